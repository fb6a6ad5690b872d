package interfaces

// IProcessDispatcher schedules the asynchronous processing of a newly created
// policy request. Dispatch never blocks the caller.
type IProcessDispatcher interface {
	Dispatch(policyRequestID string)
}
