package pool

// Blocks returns the Unicode blocks that make up the extended pool. CJK and
// Hangul syllables are sampled to keep the pool manageable.
func Blocks() []Block {
	return []Block{
		// European scripts.
		{Name: "Latin-1 Supplement", Lo: 0x00A1, Hi: 0x00FF},
		{Name: "Latin Extended-A", Lo: 0x0100, Hi: 0x017F},
		{Name: "Latin Extended-B", Lo: 0x0180, Hi: 0x024F},
		{Name: "Latin Extended Additional", Lo: 0x1E00, Hi: 0x1EFF},
		{Name: "IPA Extensions", Lo: 0x0250, Hi: 0x02AF},
		{Name: "Greek and Coptic", Lo: 0x0370, Hi: 0x03FF},
		{Name: "Cyrillic", Lo: 0x0400, Hi: 0x04FF},
		{Name: "Cyrillic Supplement", Lo: 0x0500, Hi: 0x052F},

		// Middle Eastern and African scripts.
		{Name: "Hebrew", Lo: 0x0590, Hi: 0x05FF},
		{Name: "Arabic", Lo: 0x0600, Hi: 0x06FF},
		{Name: "Arabic Supplement", Lo: 0x0750, Hi: 0x077F},
		{Name: "Arabic Extended-A", Lo: 0x08A0, Hi: 0x08FF},
		{Name: "Syriac", Lo: 0x0700, Hi: 0x074F},
		{Name: "Thaana", Lo: 0x0780, Hi: 0x07BF},
		{Name: "NKo", Lo: 0x07C0, Hi: 0x07FF},
		{Name: "Ethiopic", Lo: 0x1200, Hi: 0x137F},

		// South and Southeast Asian scripts.
		{Name: "Devanagari", Lo: 0x0900, Hi: 0x097F},
		{Name: "Bengali", Lo: 0x0980, Hi: 0x09FF},
		{Name: "Gurmukhi", Lo: 0x0A00, Hi: 0x0A7F},
		{Name: "Gujarati", Lo: 0x0A80, Hi: 0x0AFF},
		{Name: "Oriya", Lo: 0x0B00, Hi: 0x0B7F},
		{Name: "Tamil", Lo: 0x0B80, Hi: 0x0BFF},
		{Name: "Telugu", Lo: 0x0C00, Hi: 0x0C7F},
		{Name: "Kannada", Lo: 0x0C80, Hi: 0x0CFF},
		{Name: "Malayalam", Lo: 0x0D00, Hi: 0x0D7F},
		{Name: "Sinhala", Lo: 0x0D80, Hi: 0x0DFF},
		{Name: "Thai", Lo: 0x0E00, Hi: 0x0E7F},
		{Name: "Lao", Lo: 0x0E80, Hi: 0x0EFF},
		{Name: "Myanmar", Lo: 0x1000, Hi: 0x109F},
		{Name: "Khmer", Lo: 0x1780, Hi: 0x17FF},

		// East Asian scripts.
		{Name: "Hiragana", Lo: 0x3040, Hi: 0x309F},
		{Name: "Katakana", Lo: 0x30A0, Hi: 0x30FF},
		{Name: "Hangul Compatibility Jamo", Lo: 0x3130, Hi: 0x318F},
		{Name: "CJK Unified Ideographs Extension A (sample)", Lo: 0x3400, Hi: 0x3500},
		{Name: "CJK Unified Ideographs (sample)", Lo: 0x4E00, Hi: 0x4F00},
		{Name: "Hangul Syllables (sample)", Lo: 0xAC00, Hi: 0xAD00},

		// Symbols.
		{Name: "General Punctuation", Lo: 0x2000, Hi: 0x206F},
		{Name: "Currency Symbols", Lo: 0x20A0, Hi: 0x20CF},
		{Name: "Letterlike Symbols", Lo: 0x2100, Hi: 0x214F},
		{Name: "Number Forms", Lo: 0x2150, Hi: 0x218F},
		{Name: "Arrows", Lo: 0x2190, Hi: 0x21FF},
		{Name: "Mathematical Operators", Lo: 0x2200, Hi: 0x22FF},
		{Name: "Geometric Shapes", Lo: 0x25A0, Hi: 0x25FF},
		{Name: "Miscellaneous Symbols", Lo: 0x2600, Hi: 0x26FF},
		{Name: "Dingbats", Lo: 0x2700, Hi: 0x27BF},
	}
}
