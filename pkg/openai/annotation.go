package openai

// Annotation is a single search or citation record attached to a response
// message. Its schema belongs to the provider and may change underneath us,
// so it stays an opaque key-value map, passed through in the order received.
type Annotation map[string]any
