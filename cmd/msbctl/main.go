// Command msbctl inspects and edits the enemy placements of MSB map files.
package main

func main() {
	execute()
}
