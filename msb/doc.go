// Package msb decodes and encodes the enemy part records of msbkit map files.
//
// A map file is a container of parameter sections framed like MSB3. Part
// entries use a flat synthetic layout with inline names, so files written by
// the game are not readable; see package format for the byte layout. Only the enemy entries of
// the PARTS_PARAM_ST section are interpreted; every other section and every
// other part type is carried as opaque bytes and written back unchanged.
//
//	doc, enemies, err := msb.Decode(data)
//	if err != nil {
//	    return err
//	}
//	enemies[0].ThinkParamID = 120000
//	out, err := doc.Encode(enemies)
//
// Records that were not modified since decode encode to their original bytes,
// so Encode(Decode(b)) == b for every valid b.
//
// Field values coming from user input go through SetField, which parses and
// validates the raw string before touching the record. Decode and Encode hold
// no shared state and may run concurrently on independent data.
package msb
