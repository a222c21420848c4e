// Package scoring provides remote model scoring implementations.
//
// Implementations:
//   - mlflow: MLflow serving dataframe_split request format (default)
//   - tfserving: TensorFlow Serving named-inputs request format
//
// Both make a single authenticated HTTPS POST per prediction with a
// bounded timeout. There are no retries and no circuit breaking.
package scoring
