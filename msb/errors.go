package msb

import "github.com/joshuapare/msbkit/pkg/types"

func formatError(msg string, err error) error {
	return types.FormatError(msg, err)
}
