package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// FoodColors is the pellet palette; Food.Color indexes into it.
var FoodColors = [...]RGB{
	{R: 0x7d, G: 0xd3, B: 0xfc},
	{R: 0xa7, G: 0x8b, B: 0xfa},
	{R: 0xf4, G: 0x72, B: 0xb6},
	{R: 0xfc, G: 0xa5, B: 0xa5},
	{R: 0xfd, G: 0xba, B: 0x74},
	{R: 0xfd, G: 0xe6, B: 0x8a},
	{R: 0x86, G: 0xef, B: 0xac},
}

var Palette = struct {
	Background  RGB
	Grid        RGB
	Edge        RGB
	Snake       RGB
	SnakeArrow  RGB
	Chaser      RGB
	ChaserEye   RGB
	ChaserArrow RGB
}{
	Background:  RGB{R: 10, G: 10, B: 12},
	Grid:        RGB{R: 80, G: 90, B: 150},
	Edge:        RGB{R: 120, G: 150, B: 255},
	Snake:       RGB{R: 0x7e, G: 0xe7, B: 0xff},
	SnakeArrow:  RGB{R: 255, G: 235, B: 120},
	Chaser:      RGB{R: 0xff, G: 0xd5, B: 0x4a},
	ChaserEye:   RGB{R: 0x0b, G: 0x10, B: 0x24},
	ChaserArrow: RGB{R: 126, G: 231, B: 255},
}
