// Standard attribute keys for training and model selection records.
//
// Keys follow a hierarchical naming convention ("data.samples",
// "training.epoch") so records can be filtered by prefix.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator, e.g. "LogisticRegression".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: see the Operation* constants.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	// Examples: "optimize", "model_selection", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates training or validation.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns, bias included.
	FeaturesKey = "data.features"

	// BatchSizeKey is the mini-batch size.
	BatchSizeKey = "data.batch_size"

	// BatchesKey is the number of mini-batches per epoch after the remainder
	// rows have been dropped.
	BatchesKey = "data.batches"

	// DroppedRowsKey is the number of trailing rows excluded from the partition.
	DroppedRowsKey = "data.dropped_rows"
)

// Training Progress and Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the cost value.
	LossKey = "metrics.loss"

	// FMeasureKey records the F1 score on the validation set.
	FMeasureKey = "metrics.f_measure"

	// EpochKey records the current epoch.
	EpochKey = "training.epoch"

	// EpochsKey records the configured number of epochs.
	EpochsKey = "training.epochs"

	// CandidatesKey records the size of a hyperparameter grid.
	CandidatesKey = "selection.candidates"
)

// Hyperparameters
const (
	// LearningRateKey records the fixed step size eta.
	LearningRateKey = "hyperparams.learning_rate"

	// RegularizationKey records the L2 strength lambda.
	RegularizationKey = "hyperparams.regularization"

	// ThresholdKey records the decision threshold theta.
	ThresholdKey = "preds.threshold"
)

// Error Context
const (
	// ErrorTypeKey categorizes the error, e.g. "DimensionError".
	ErrorTypeKey = "error.type"

	// StacktraceKey holds the stack trace extracted from cockroachdb/errors.
	StacktraceKey = "error.stacktrace"
)

// Standard operation values for OperationKey.
const (
	OperationFit             = "fit"
	OperationPredict         = "predict"
	OperationScore           = "score"
	OperationGradientDescent = "gradient_descent"
	OperationSGD             = "stochastic_gradient_descent"
	OperationModelSelection  = "model_selection"
)

// Standard phase values for PhaseKey.
const (
	PhaseTraining   = "training"
	PhaseValidation = "validation"
)
