// Package ports declares the interfaces between the application core
// and its adapters.
//
// Implementations:
//   - scoring/mlflow: MLflow serving dataframe_split format
//   - scoring/tfserving: TensorFlow Serving inputs format
//   - metrics/prometheus: Prometheus metrics collector
package ports
