package docdiff

// Compile-time interface verification.
var _ StructuralComparer = StructComparer{}

// StructComparer is the default StructuralComparer. It compares the
// structural payloads filled in by the extractors: row/cell text for tables,
// src and alt for images. A missing block or payload is never equal to
// anything.
type StructComparer struct{}

// TablesEqual reports whether two table blocks have the same shape and the
// same cell text under whitespace/case normalization.
func (StructComparer) TablesEqual(a, b *Block) bool {
	if a == nil || b == nil || a.Table == nil || b.Table == nil {
		return false
	}
	if len(a.Table.Rows) != len(b.Table.Rows) {
		return false
	}
	for i, row := range a.Table.Rows {
		other := b.Table.Rows[i]
		if len(row) != len(other) {
			return false
		}
		for j, cell := range row {
			if !TextsEqual(cell, other[j]) {
				return false
			}
		}
	}
	return true
}

// ImagesEqual reports whether two image blocks reference the same source
// with the same alternative text.
func (StructComparer) ImagesEqual(a, b *Block) bool {
	if a == nil || b == nil || a.Image == nil || b.Image == nil {
		return false
	}
	return a.Image.Src == b.Image.Src && a.Image.Alt == b.Image.Alt
}
