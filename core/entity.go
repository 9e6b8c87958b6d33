package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks an absent entity
type Entity uint64
