/*
Package editor provides one-call operations on MSB files for tools and
scripts. Each call loads the file, applies one edit and saves it back
atomically.

# Basic Usage

List the enemies of a map:

	enemies, err := editor.List("m30_00_00_00.msb")

Change a field, keeping a backup of the original:

	err := editor.SetField("m30_00_00_00.msb", 4, "NPCParamID", "120010",
	    &editor.Options{CreateBackup: true})

Check that a file survives a decode and encode unchanged:

	res, err := editor.Verify("m30_00_00_00.msb")
	if err == nil && !res.OK {
	    fmt.Printf("first difference at 0x%x\n", res.FirstDiff)
	}

# Errors

Errors carry a types.ErrKind; use errors.Is with types.ErrFormat,
types.ErrIndex or types.ErrIO to branch on the cause.
*/
package editor
