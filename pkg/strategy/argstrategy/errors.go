package argstrategy

import "github.com/debatelab/argdown-cotgen/pkg/errors"

func strategyError(reason string) error {
	return errors.StrategyError(reason)
}
