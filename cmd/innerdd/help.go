package main

const programName = "innerdd"

const versionString = "0.1.0"

const copyright = "Copyright (c) the innerdd authors. Distributed under the same terms as the original inner approximation solver."

const shortHelpText = `Usage: ` + programName + ` [options] <vlp file>
Solve a multiobjective linear program using the inner approximation method.
` + copyright + `
Some of the options are:
  -h               display this short help
  --help           display all options
  -c <config file> specify configuration file
  -o <file>        save the solution to <file>
  -q               quiet, no messages
  -p T             progress report in every T seconds (default: T=5)
  -p 0             no progress report
  -y+              report vertices immediately when generated (default)
  -y-              do not report vertices when generated
Previous content of the output file is deleted without warning.
`

const longHelpText = `Usage: ` + programName + ` [options] <vlp file>
Solve a multiobjective linear program using the inner approximation method.
` + copyright + `
Options are:
  -h               display a short help
  --help           display all options
  --help=vlp       describe vlp file format
  --help=out       describe output format
  --version        version and copyright information
  --dump           dump the default config file and quit
  --config=<config file>
  -c <config file> read configuration from the given file
                   use '` + programName + ` --dump' to show the default config file
  -o <file>        save result (both vertices and facets) to <file>
  -ov <file>       save vertices to <file>
  -of <file>       save facets to <file>
  --name=NAME
  -n NAME          specify the problem name
  -m[0..3]         set message level: 0: none, 3: verbose
  -q               quiet, same as -m0
  -p T             progress report in every T seconds (default: T=5)
  -p 0             no progress report
  -y+              report vertices immediately when generated (default)
  -y-              do not report vertices when generated
  -r N             recalculate facet equations after N rounds (default: N=100)
  -k N             check numerical consistency after N rounds (default: N=0)
  --KEYWORD=value  change value of a config keyword
Exit values:
  0                program exited normally
  1                input error
  2                numerical instability; computational error
  3                interrupted, only partial result is available
  4                error while extracting a partial result after an interrupt
  5                a second interrupt aborted partial-result extraction
Previous content of output files are deleted without warning.
`

const vlpHelpText = `****************************
***   VLP input format   ***
****************************

A multiple objective linear program (MOLP) is a linear program with
multiple objective functions. The VLP format describes such a problem
in a plain text file. In this file each line begins with a lower-case
letter which identifies the line type, which can be one of
    c    comment
    p    program line, it should be the first non-comment line
    i    constraint matrix row descriptor
    j    constraint matrix column descriptor
    a    constraint matrix coefficient
    o    objective coefficient
    e    end of data, last processed line in the vlp file
Comment lines are ignored. The 'p' program line has the format
    p vlp DIR ROWS COLS ALINES OBJS OLINES
DIR is either 'min' or 'max' defining whether the problem is to minimize
or maximize the objectives. The other fields are positive integers: ROWS,
COLS are the number of rows and columns of the constraint matrix, and OBJS
is the number of objectives. ALINES and OLINES are the number of 'a' and
'o' lines in the vlp file; these numbers are ignored by this program.

PLEASE NOTE: rows, columns and objectives ARE INDEXED STARTING FROM 1.

A row descriptor line starting with 'i' can be one of the following:
    i ROW f            row is free, there is no constraint
    i ROW l VAL        row with lower bound, row's value is >= VAL
    i ROW u VAL        row with upper bound, row's value is <= VAL
    i ROW d VAL1 VAL2  doubly bounded row: VAL1 <= row's value <= VAL2
    i ROW s VAL        row's value is fixed to be equal to VAL
here ROW is the row's index (between 1 and the number of rows), and VAL is
a floating point constant. The form of a 'j' line is similar, it describes
the variable types: free, with lower and/or upper bound, or fixed. The
default row type is 'free', the default column type is 'fixed' with value
zero.
Elements of the constraint matrix are specified as
    a ROW COL VAL      both ROW and COL are positive integers
while the coefficients in the OBJ-th objective function are given as
    o OBJ COL VAL
VAL is a floating point constant; 'a' and 'o' lines with zero values can
be omitted.
`

const outHelpText = `*************************
***   Output format   ***
*************************

The solution of a MOLP with d objectives is a list of d-dimensional points:
the EXTREMAL solutions. These points are the vertices of the d-dimensional
polyhedron which is formed by the achievable solutions and their superset
(when the problem is minimize), or subset (when the problem is maximize).

Extremal solutions are printed in separate lines starting with 'V' followed
by the value of the d objectives separated by spaces:
    V 0 5/2 3/4 7.123456789 -1/2
Numbers are printed as fractions with small denominator whenever possible.
To print them as floating point numerals use the '--PrintAsFraction=0'
command line option, or change this value in the default config file.

When requested, facets of the extremal polyhedron are printed in separate
lines starting with 'F' followed by d+1 floating point numerals separated by
spaces. The facet has equation f[1]*x1+...+f[d]*xd + f[d+1]=0.
    F 13 7 7 1 0 -10

Other non-empty lines in the output start with C, and contain information
such as the name and size of the problem; whether it is a partial list; and
the number of vertices and facets printed.
`

func versionText() string {
	return "This is '" + programName + "' Version " + versionString + ", a multiobjective linear program solver.\n" + copyright + "\n"
}
