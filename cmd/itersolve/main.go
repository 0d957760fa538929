// Command itersolve solves linear systems from YAML problem files with the
// registered iterative solvers, stopping each run through a configurable
// iteration controller.
package main

func main() {
	Execute()
}
