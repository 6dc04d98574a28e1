/*Basic command structure*/
package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// context holds global options
type context struct {
	Config string        `help:"YAML config file." default:"paydesk.yaml" env:"PAYDESK_CONFIG"`
	Delay  time.Duration `help:"Settlement delay for new transactions (overrides config)."`
	Wait   bool          `help:"Wait for pending transactions to settle before exiting."`
	Out    string        `help:"Export the session when done [jsonfile:/path/file.json es8:http://myelasticsearch:9200 sqlite:/path/file.db]"`
	JSON   bool          `name:"json" help:"Print JSON rather than text."`
}

// cli commands / args available
var cli struct {
	Ctx context `embed:""`

	List       listCmd       `cmd:"" help:"List the session's transactions."`
	Analytics  analyticsCmd  `cmd:"" help:"Show totals & breakdowns."`
	Send       sendCmd       `cmd:"" help:"Send a payment to a business."`
	Invoice    invoiceCmd    `cmd:"" help:"Generate an invoice to a client."`
	Link       linkCmd       `cmd:"" help:"Generate a shareable payment link."`
	VerifyLink verifyLinkCmd `cmd:"" name:"verify-link" help:"Check a payment link and show what it carries."`
	Recurring  recurringCmd  `cmd:"" help:"Set up a recurring payment."`
	Refund     refundCmd     `cmd:"" help:"Refund a completed transaction."`
	Export     exportCmd     `cmd:"" help:"Export the session to --out."`
	Keys       keysCmd       `cmd:"" help:"Print a fresh pair of payment link keys."`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v\n", err)
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
