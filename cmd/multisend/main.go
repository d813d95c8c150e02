// Command multisend evaluates a multi-send transaction against a set of
// original account balances and denom definitions, all given as JSON files,
// and prints the resulting balance changes to stdout as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nspcc-dev/multisend/coin"
	"github.com/nspcc-dev/multisend/multisend"
	"github.com/nspcc-dev/multisend/token"
	"go.uber.org/zap"
)

func main() {
	balancesPath := flag.String("balances", "", "Path to the JSON file with original account balances")
	denomsPath := flag.String("denoms", "", "Path to the JSON file with denom definitions")
	txPath := flag.String("tx", "", "Path to the JSON file with the multi-send transaction")
	pretty := flag.Bool("pretty", false, "Indent the printed result")

	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	switch {
	case *balancesPath == "":
		log.Fatal("missing path to original balances")
	case *denomsPath == "":
		log.Fatal("missing path to denom definitions")
	case *txPath == "":
		log.Fatal("missing path to the transaction")
	}

	log = log.With(zap.String("run", uuid.NewString()))

	changes, err := evaluate(*balancesPath, *denomsPath, *txPath)
	if err != nil {
		log.Fatal("transaction rejected", zap.Error(err))
	}

	log.Info("transaction accepted", zap.Int("changed accounts", len(changes)))

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(changes); err != nil {
		log.Fatal("encode balance changes", zap.Error(err))
	}
}

func evaluate(balancesPath, denomsPath, txPath string) ([]coin.Balance, error) {
	var balances []coin.Balance
	if err := readJSON(balancesPath, &balances); err != nil {
		return nil, fmt.Errorf("read original balances: %w", err)
	}

	var definitions []token.DenomDefinition
	if err := readJSON(denomsPath, &definitions); err != nil {
		return nil, fmt.Errorf("read denom definitions: %w", err)
	}

	var tx multisend.Tx
	if err := readJSON(txPath, &tx); err != nil {
		return nil, fmt.Errorf("read transaction: %w", err)
	}

	return multisend.ComputeBalanceChanges(balances, definitions, tx)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode '%s': %w", path, err)
	}
	return nil
}
