package constant

// UsageTopicName is the in-process bus topic carrying usage recording
// messages from request handlers to the consumer.
const UsageTopicName = "RECORD_USAGE"
