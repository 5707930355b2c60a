// Package text loads fonts and measures strings for text layers.
//
// The core package keeps text bounds on a FontSize heuristic so it works
// without any font at hand. Hosts that want exact bounds load a Source,
// derive a Face at the layer's FontSize, and write the measured extent back
// into the layer's Width and Height:
//
//	src, err := text.NewSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	face := src.Face(layer.FontSize)
//	layer.Width, layer.Height = face.Measure(layer.Text)
//
// Shaping goes through go-text/typesetting's HarfBuzz port, so kerning,
// ligatures and right-to-left scripts measure correctly. Paragraph direction
// is detected with the Unicode bidi algorithm; see [DetectDirection].
package text
