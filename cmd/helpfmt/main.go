// Command helpfmt renders command-line help for command trees described in YAML.
//
//	helpfmt render tree.yaml --mode all --column-width 24
//	helpfmt demo --placeholder OPTION --column-width 15
//	helpfmt labels --labels 'USAGE=Aufruf "REQUIRED=(Pflicht)"'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(productionLogger).Execute(); err != nil {
		os.Exit(1)
	}
}
