package bitfield

import "testing"

func TestChecksumKnownValue(t *testing.T) {
	got := Checksum([]byte{0x71, 0x6C, 0x01, 0x10})
	if got != 0x12 {
		t.Fatalf("Checksum = %#x, want 0x12", got)
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF, 0xFF, 0xFF},
		{0x71, 0x6C, 0x01, 0x10, 0x00, 0x00, 0x00},
	}
	for _, data := range cases {
		chk := Checksum(data)
		withChk := append(append([]byte{}, data...), chk)
		if s := Checksum(withChk); s != 0 {
			t.Errorf("Checksum(data||checksum) = %#x, want 0", s)
		}
		if !ValidChecksum(withChk) {
			t.Errorf("ValidChecksum(data||checksum) = false, want true for %v", data)
		}
	}
}

func TestValidChecksumEmpty(t *testing.T) {
	if ValidChecksum(nil) {
		t.Fatal("ValidChecksum(nil) = true, want false")
	}
}

func TestBitfieldPrimitives(t *testing.T) {
	if v := Bit1(0x80); v != 1 {
		t.Errorf("Bit1(0x80) = %d, want 1", v)
	}
	if v := Bits1_2(0xC0); v != 2 {
		t.Errorf("Bits1_2(0xC0) = %d, want 2", v)
	}
	if v := Bits3_4(0x20); v != 1 {
		t.Errorf("Bits3_4(0x20) = %d, want 1", v)
	}
	if v := Bits5_6(0x08); v != 1 {
		t.Errorf("Bits5_6(0x08) = %d, want 1", v)
	}
	if v := Bits7_8(0x02); v != 1 {
		t.Errorf("Bits7_8(0x02) = %d, want 1", v)
	}
	if v := Bits3_5(0x10); v != 1 {
		t.Errorf("Bits3_5(0x10) = %d, want 1", v)
	}
	if v := Right3(0x02); v != 1 {
		t.Errorf("Right3(0x02) = %d, want 1", v)
	}
	if v := IMinus1(5); v != 4 {
		t.Errorf("IMinus1(5) = %d, want 4", v)
	}
	if v := IMinus128(150); v != 22 {
		t.Errorf("IMinus128(150) = %d, want 22", v)
	}
	if v := Energy(6); v != 1000 {
		t.Errorf("Energy(6) = %d, want 1000", v)
	}
}

func TestIMinus1Div5Rounding(t *testing.T) {
	if v := IMinus1Div5(11); v != 2.0 {
		t.Errorf("IMinus1Div5(11) = %v, want 2.0", v)
	}
}

func TestUpdateByte(t *testing.T) {
	// Byte 0b0101_0101, set bits 4-5 (mask 0b11 shifted by 4) to 0b10.
	current := byte(0b0101_0101)
	got := UpdateByte(current, 0b10, 0b11, 4)
	want := byte(0b0110_0101)
	if got != want {
		t.Errorf("UpdateByte = %08b, want %08b", got, want)
	}
}

func TestNTCRoundTrip(t *testing.T) {
	for code := 0; code < 256; code++ {
		temp := NTCTemp(byte(code))
		back := NTCCodeOfTemp(temp)
		if int(back) > code {
			t.Errorf("NTCCodeOfTemp(NTCTemp(%d)=%d) = %d, expected <= %d", code, temp, back, code)
		}
	}
}

func TestNTCCodeOfTempOutOfRange(t *testing.T) {
	if got := NTCCodeOfTemp(-1000); got != 255 {
		t.Errorf("NTCCodeOfTemp(-1000) = %d, want 255", got)
	}
	if got := NTCCodeOfTemp(1000); got != 0 {
		t.Errorf("NTCCodeOfTemp(1000) = %d, want 0", got)
	}
}
