package proxy

// Error codes for wrapper construction.
const (
	// CodeNotCallable is returned when the wrap target or slot value is not a function.
	CodeNotCallable = "NOT_CALLABLE"

	// CodeSlotNotFound is returned when the owner has no slot under the given name.
	CodeSlotNotFound = "SLOT_NOT_FOUND"

	// CodeNoReceiver is returned when a method slot function has no receiver parameter.
	CodeNoReceiver = "NO_RECEIVER"

	// CodeInvalidOwner is returned when a method target is nil or does not implement Owner.
	CodeInvalidOwner = "INVALID_OWNER"

	// CodeInvalidKey is returned when Wrap receives more than one slot name.
	CodeInvalidKey = "INVALID_KEY"
)
