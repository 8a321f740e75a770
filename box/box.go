// Package box resolves Unicode box-drawing glyphs from the weight of
// the four line segments meeting at a junction. The grid renderer uses
// it to draw seamless borders whose thickness follows the revealed
// state of the surrounding cells.
package box

// Edge is the weight of one line segment at a junction.
type Edge uint8

const (
	None Edge = iota
	Light
	Heavy
)

// Weight maps the renderer's "is this side still covered" flag to a
// line weight: covered cells keep the heavy grid, revealed cells drop
// to light.
func Weight(covered bool) Edge {
	if covered {
		return Heavy
	}
	return Light
}

// glyphs is the total lookup table over (up, down, left, right), each
// in {None, Light, Heavy}, indexed in base 3. Combinations with no
// box-drawing codepoint (and combinations the grid never produces)
// stay blank.
var glyphs = [81]rune{}

func init() {
	for i := range glyphs {
		glyphs[i] = ' '
	}
	for t, r := range map[[4]Edge]rune{
		{None, None, Light, Light}: '─',
		{None, None, Heavy, Heavy}: '━',
		{Light, Light, None, None}: '│',
		{Heavy, Heavy, None, None}: '┃',

		{None, Light, None, Light}: '┌',
		{None, Light, None, Heavy}: '┍',
		{None, Heavy, None, Light}: '┎',
		{None, Heavy, None, Heavy}: '┏',
		{None, Light, Light, None}: '┐',
		{None, Light, Heavy, None}: '┑',
		{None, Heavy, Light, None}: '┒',
		{None, Heavy, Heavy, None}: '┓',
		{Light, None, None, Light}: '└',
		{Light, None, None, Heavy}: '┕',
		{Heavy, None, None, Light}: '┖',
		{Heavy, None, None, Heavy}: '┗',
		{Light, None, Light, None}: '┘',
		{Light, None, Heavy, None}: '┙',
		{Heavy, None, Light, None}: '┚',
		{Heavy, None, Heavy, None}: '┛',

		{Light, Light, None, Light}: '├',
		{Light, Light, None, Heavy}: '┝',
		{Heavy, Light, None, Light}: '┞',
		{Light, Heavy, None, Light}: '┟',
		{Heavy, Heavy, None, Light}: '┠',
		{Heavy, Light, None, Heavy}: '┡',
		{Light, Heavy, None, Heavy}: '┢',
		{Heavy, Heavy, None, Heavy}: '┣',
		{Light, Light, Light, None}: '┤',
		{Light, Light, Heavy, None}: '┥',
		{Heavy, Light, Light, None}: '┦',
		{Light, Heavy, Light, None}: '┧',
		{Heavy, Heavy, Light, None}: '┨',
		{Heavy, Light, Heavy, None}: '┩',
		{Light, Heavy, Heavy, None}: '┪',
		{Heavy, Heavy, Heavy, None}: '┫',

		{None, Light, Light, Light}: '┬',
		{None, Light, Heavy, Light}: '┭',
		{None, Light, Light, Heavy}: '┮',
		{None, Light, Heavy, Heavy}: '┯',
		{None, Heavy, Light, Light}: '┰',
		{None, Heavy, Heavy, Light}: '┱',
		{None, Heavy, Light, Heavy}: '┲',
		{None, Heavy, Heavy, Heavy}: '┳',
		{Light, None, Light, Light}: '┴',
		{Light, None, Heavy, Light}: '┵',
		{Light, None, Light, Heavy}: '┶',
		{Light, None, Heavy, Heavy}: '┷',
		{Heavy, None, Light, Light}: '┸',
		{Heavy, None, Heavy, Light}: '┹',
		{Heavy, None, Light, Heavy}: '┺',
		{Heavy, None, Heavy, Heavy}: '┻',

		{Light, Light, Light, Light}: '┼',
		{Light, Light, Heavy, Light}: '┽',
		{Light, Light, Light, Heavy}: '┾',
		{Light, Light, Heavy, Heavy}: '┿',
		{Heavy, Light, Light, Light}: '╀',
		{Light, Heavy, Light, Light}: '╁',
		{Heavy, Heavy, Light, Light}: '╂',
		{Heavy, Light, Heavy, Light}: '╃',
		{Heavy, Light, Light, Heavy}: '╄',
		{Light, Heavy, Heavy, Light}: '╅',
		{Light, Heavy, Light, Heavy}: '╆',
		{Heavy, Light, Heavy, Heavy}: '╇',
		{Light, Heavy, Heavy, Heavy}: '╈',
		{Heavy, Heavy, Heavy, Light}: '╉',
		{Heavy, Heavy, Light, Heavy}: '╊',
		{Heavy, Heavy, Heavy, Heavy}: '╋',
	} {
		glyphs[index(t[0], t[1], t[2], t[3])] = r
	}
}

func index(up, down, left, right Edge) int {
	return int(up)*27 + int(down)*9 + int(left)*3 + int(right)
}

// Rune returns the junction glyph for the given edge weights.
func Rune(up, down, left, right Edge) rune {
	return glyphs[index(up, down, left, right)]
}
