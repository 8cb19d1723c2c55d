// compileinfoprint is imported by the coverage plot binaries for the side
// effect of printing their build information to os.Stderr on startup.
package compileinfoprint

import "github.com/carbocation/covplot/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
