package catalogue

// ModelNames lists the heat pump model signatures this bridge can
// recognize by their 10-byte model identification block (main frame bytes
// 129-138). The upstream model-signature table was not available in this
// build; this is a small illustrative set covering common Aquarea
// All-In-One and bibloc units rather than an exhaustive registry — an
// unrecognized signature simply decodes to index -1 / name "Unknown".
var ModelNames = []string{
	"Aquarea All In One Compact (KIT-ADC09)",
	"Aquarea All In One Compact (KIT-ADC12)",
	"Aquarea All In One (KIT-AXC09)",
	"Aquarea All In One (KIT-AXC12)",
	"Aquarea T-CAP (KIT-WC09)",
	"Aquarea T-CAP (KIT-WC12)",
	"Aquarea Bibloc (KIT-WC03)",
	"Aquarea Bibloc (KIT-WC05)",
}

// modelSignatures holds the 10-byte fingerprint for each entry in
// ModelNames, in the same order. A real deployment would populate this
// from the device's own identification bytes; these are placeholders
// since the source fingerprint table wasn't available.
var modelSignatures = [][10]byte{
	{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// ModelIndex returns the index into ModelNames matching the 10-byte model
// block starting at frame[129], or -1 if none match.
func ModelIndex(frame []byte) int {
	if len(frame) < 139 {
		return -1
	}
	var block [10]byte
	copy(block[:], frame[129:139])
	for i, sig := range modelSignatures {
		if sig == block {
			return i
		}
	}
	return -1
}
