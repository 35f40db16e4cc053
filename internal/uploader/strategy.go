package uploader

// MiB is the unit of the configured part size
const MiB int64 = 1024 * 1024

// simpleThresholdParts is how many part sizes a file may reach before it is uploaded in parts
const simpleThresholdParts = 10

// Strategy is the way a file is transferred
type Strategy string

const (
	// StrategySimple uploads the whole file with one request
	StrategySimple Strategy = "simple"
	// StrategyMultipart uploads the file in concurrent parts
	StrategyMultipart Strategy = "multipart"
)

// PartSizeBytes converts the configured part size to bytes
func PartSizeBytes(partSizeMiB int) int64 {
	return int64(partSizeMiB) * MiB
}

// Threshold is the smallest file size uploaded in parts
func Threshold(partSizeMiB int) int64 {
	return simpleThresholdParts * PartSizeBytes(partSizeMiB)
}

// ChooseStrategy picks the simple path for files strictly smaller than ten part sizes
// and the multipart path otherwise, so the boundary moves with the configured part size.
func ChooseStrategy(size int64, partSizeMiB int) Strategy {
	if size < Threshold(partSizeMiB) {
		return StrategySimple
	}
	return StrategyMultipart
}
