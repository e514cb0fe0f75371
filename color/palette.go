package color

// ChartPalette is the series color cycle for charts
var ChartPalette = [8]Packed{
	0xFF00BCD4, // cyan
	0xFFE91E63, // pink
	0xFFFFEB3B, // yellow
	0xFF4CAF50, // green
	0xFF2196F3, // blue
	0xFFF44336, // red
	0xFFFF9800, // orange
	0xFF9C27B0, // purple
}

// ChartColor returns the palette entry for a series index, negative indices wrap
func ChartColor(index int) Packed {
	n := len(ChartPalette)
	i := index % n
	if i < 0 {
		i += n
	}
	return ChartPalette[i]
}
