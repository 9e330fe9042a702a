package rpirgbw

// All scaling uses the "fixed" convention: a scale factor s is applied as (s+1)/256,
// so Scale8(v, 255) == v. Video variants keep the truncating product so the
// non-zero bias can never overflow a channel.

//Scale8 scales i by scale/256 and returns the result. Scaling by 255 is an identity.
func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * (uint16(scale) + 1)) >> 8)
}

//Scale8Video scales i by scale/256 like Scale8, but a non-zero i stays non-zero
//as long as scale is non-zero.
func Scale8Video(i, scale uint8) uint8 {
	if i == 0 || scale == 0 {
		return 0
	}
	return uint8((uint16(i)*uint16(scale))>>8) + 1
}

//Scale16By8 scales a 16-bit value by an 8-bit scale interpreted as scale/256.
func Scale16By8(i uint16, scale uint8) uint16 {
	return uint16((uint32(i) * (uint32(scale) + 1)) >> 8)
}

//Scale16 scales a 16-bit value by a 16-bit scale interpreted as scale/65536.
func Scale16(i, scale uint16) uint16 {
	return uint16((uint32(i) * (uint32(scale) + 1)) >> 16)
}

//QAdd8 adds i and j and clamps the result at 255.
func QAdd8(i, j uint8) uint8 {
	t := uint16(i) + uint16(j)
	if t > 255 {
		return 255
	}
	return uint8(t)
}

//NScale8x2 scales two values by the same scale.
func NScale8x2(i, j, scale uint8) (uint8, uint8) {
	return Scale8(i, scale), Scale8(j, scale)
}

//NScale8x2Video scales two values by the same scale with Scale8Video.
func NScale8x2Video(i, j, scale uint8) (uint8, uint8) {
	return Scale8Video(i, scale), Scale8Video(j, scale)
}

//NScale8x3 scales three values, usually r, g and b, by the same scale.
func NScale8x3(r, g, b, scale uint8) (uint8, uint8, uint8) {
	return Scale8(r, scale), Scale8(g, scale), Scale8(b, scale)
}

//NScale8x3Video scales three values by the same scale with Scale8Video.
func NScale8x3Video(r, g, b, scale uint8) (uint8, uint8, uint8) {
	return Scale8Video(r, scale), Scale8Video(g, scale), Scale8Video(b, scale)
}

//NScale8x4 scales four values, usually r, g, b and w, by the same scale.
func NScale8x4(r, g, b, w, scale uint8) (uint8, uint8, uint8, uint8) {
	return Scale8(r, scale), Scale8(g, scale), Scale8(b, scale), Scale8(w, scale)
}

//NScale8x4Video scales four values by the same scale with Scale8Video.
func NScale8x4Video(r, g, b, w, scale uint8) (uint8, uint8, uint8, uint8) {
	return Scale8Video(r, scale), Scale8Video(g, scale), Scale8Video(b, scale), Scale8Video(w, scale)
}
