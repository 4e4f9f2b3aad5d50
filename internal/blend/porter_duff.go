package blend

// SourceOver composites source over destination (premultiplied).
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
		return dr, dg, db, da
	}
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// DestinationOut keeps destination where the source is transparent.
// Only the source alpha takes part; this is the eraser operator.
// Formula: D * (1 - Sa)
func DestinationOut(sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	switch sa {
	case 0:
		return dr, dg, db, da
	case 255:
		return 0, 0, 0, 0
	}
	invSa := 255 - sa
	return MulDiv255(dr, invSa),
		MulDiv255(dg, invSa),
		MulDiv255(db, invSa),
		MulDiv255(da, invSa)
}

// Scale multiplies every channel of a premultiplied pixel by alpha.
// This is how a global opacity is applied to a source before compositing.
func Scale(r, g, b, a, alpha byte) (byte, byte, byte, byte) {
	if alpha == 255 {
		return r, g, b, a
	}
	return MulDiv255(r, alpha), MulDiv255(g, alpha), MulDiv255(b, alpha), MulDiv255(a, alpha)
}
