// Nightshift stops tagged AWS resources at night and starts them again
// in the morning.
package main

func main() {
	Execute()
}
