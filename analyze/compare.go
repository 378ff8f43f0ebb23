package analyze

import "github.com/hypershape/hypershape/shape"

// Compare builds a ComparisonReport for two shapes: ratios are a/b for
// volume and surface (spec section 4.5); ties in "largest by" favor a.
func Compare(a, b shape.Shape) (ComparisonReport, error) {
	ra, err := a.Describe()
	if err != nil {
		return ComparisonReport{}, err
	}
	rb, err := b.Describe()
	if err != nil {
		return ComparisonReport{}, err
	}

	largestVolume := "a"
	if rb.Volume > ra.Volume {
		largestVolume = "b"
	}
	largestSurface := "a"
	if rb.Surface > ra.Surface {
		largestSurface = "b"
	}

	return ComparisonReport{
		ShapeA:           ra,
		ShapeB:           rb,
		VolumeRatio:      ratioOf(ra.Volume, rb.Volume),
		SurfaceRatio:     ratioOf(ra.Surface, rb.Surface),
		LargestByVolume:  largestVolume,
		LargestBySurface: largestSurface,
	}, nil
}
