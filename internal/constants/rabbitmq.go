package constants

// Exchange shared by the renovation pipeline.
const (
	ExchangeRenovation = "renovation_exchange"
)

// Queue names
const (
	QueueRoomAssessments = "room_assessments"
)

// Routing keys
const (
	RoutingKeyRoomAssessments  = "estimates.assessment.submitted"
	RoutingKeyPropertyEstimate = "estimates.estimate.ready"
)

const (
	FinalDLXExchange   = "room_assessments_final_dlx"
	FinalDLQ           = "room_assessments_final_dlq"
	FinalDLQRoutingKey = "assessments.dlq.key"
)
