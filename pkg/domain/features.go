package domain

// NumFeatures is the number of inputs the progression model expects.
const NumFeatures = 10

// FeatureNames lists the model inputs in the canonical order the remote
// model was trained with. The serving endpoint is positional, so this
// order is part of the wire contract and must not change.
var FeatureNames = []string{
	"age", // patient age (normalized)
	"sex", // patient sex (normalized)
	"bmi", // body mass index (normalized)
	"bp",  // average blood pressure (normalized)
	"s1",  // total serum cholesterol (normalized)
	"s2",  // low-density lipoproteins (normalized)
	"s3",  // high-density lipoproteins (normalized)
	"s4",  // total cholesterol / HDL ratio (normalized)
	"s5",  // log of serum triglycerides (normalized)
	"s6",  // blood sugar level (normalized)
}

// FeatureVector holds the ten model inputs in canonical order. It is
// built per request from validated input and discarded afterwards.
type FeatureVector [NumFeatures]float64

// Values returns the vector as a slice, in canonical order.
func (v FeatureVector) Values() []float64 {
	out := make([]float64, NumFeatures)
	copy(out, v[:])
	return out
}
