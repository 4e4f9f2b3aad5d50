package blend

// Multiply composites source over destination with the separable multiply
// blend function B(s, d) = s * d.
//
// In premultiplied form the W3C formula
//
//	(1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//
// reduces per channel to
//
//	S * (1 - Da) + D * (1 - Sa) + S * D
//
// A transparent source, or an opaque white source, returns the destination
// unchanged.
func Multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	invDa := 255 - da
	return multiplyChannel(sr, dr, invSa, invDa),
		multiplyChannel(sg, dg, invSa, invDa),
		multiplyChannel(sb, db, invSa, invDa),
		addClamp(sa, MulDiv255(da, invSa))
}

func multiplyChannel(s, d, invSa, invDa byte) byte {
	sum := uint32(s)*uint32(invDa) + uint32(d)*uint32(invSa) + uint32(s)*uint32(d)
	v := div255(sum)
	if v > 255 {
		return 255
	}
	return byte(v)
}
