package domain

// KeyPrefix is the default prefix for every key the service writes to Redis/Valkey.
const KeyPrefix = "shopsearch:"
