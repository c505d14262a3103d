package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldOrderID     = "order_id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldQuantity    = "quantity"
	FieldOrderDate   = "order_date"
	FieldPeriod      = "period"
	FieldBoundary    = "boundary"
	FieldCount       = "count"
	FieldTotalCents  = "total_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentOrders  = "orders"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpSubmit    = "submit"
	OpList      = "list"
	OpAnalyze   = "analyze"
	OpSummarize = "summarize"
	OpAppend    = "append"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
