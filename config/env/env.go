package env

// Sort alphabetically.

const ICBIterations = "PPH_ICB_ITERATIONS"
const ICBWidth = "PPH_ICB_WIDTH"
const RecombinationIterations = "PPH_RECOMBINATION_ITERATIONS"
const SaltSize = "PPH_SALT_SIZE"
const ShamirShares = "PPH_SHAMIR_SHARES"
const ShamirThreshold = "PPH_SHAMIR_THRESHOLD"
const StackTracesOnFatal = "PPH_STACK_TRACES_ON_LOG_FATAL"
const SystemLogLevel = "PPH_LOG_LEVEL"
