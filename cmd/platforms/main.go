// Command platforms reads train arrival and departure times and reports the
// minimum number of platforms the station needs, computed two ways.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
