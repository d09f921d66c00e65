// Package testcmd runs the osintkit CLI within tests and matches its output
// against snapshots.
package testcmd

type Case struct {
	Name string
	Args []string
	Exit int
}
