// Command curveplate generates cutting templates for flexible model-railway
// track: straight sections, constant-radius curves and clothoid transitions,
// exported as SVG, PDF, STEP or PNG.
package main

func main() {
	Execute()
}
