package main

import "github.com/urfave/cli/v2"

var accountFlag = &cli.StringFlag{
	Name:    "account",
	Usage:   "Wallet account to mint for, e.g. 0x2c75...5c23",
	EnvVars: []string{"NOOTMINT_ACCOUNT"},
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "nootmint"
	app.Usage = "Mint NOOT tokens for free through a paymaster or by paying the fee"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the TOML config file",
			EnvVars: []string{"NOOTMINT_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Overrides log.level: debug, info, warn, error or silence",
			EnvVars: []string{"NOOTMINT_LOG_LEVEL"},
		},
	}
	app.Before = s.load
	app.After = s.close
	app.Action = cli.ShowAppHelp
	app.Commands = []*cli.Command{
		{
			Action:      s.startStatus,
			Name:        "status",
			Usage:       "Print the mint options of an account",
			Flags:       []cli.Flag{accountFlag},
			Category:    "Mint",
			Description: `Reads eligibility, amount and fee from the contract and prints the rendered view.`,
		},
		{
			Action:      s.startFreeMint,
			Name:        "free-mint",
			Usage:       "Submit the sponsored free mint and wait for the receipt",
			Flags:       []cli.Flag{accountFlag},
			Category:    "Mint",
			Description: `Sends freeMint() through the relay, the paymaster pays the gas.`,
		},
		{
			Action:      s.startPaidMint,
			Name:        "paid-mint",
			Usage:       "Submit the paid mint and wait for the receipt",
			Flags:       []cli.Flag{accountFlag},
			Category:    "Mint",
			Description: `Signs paidMint() with wallet.private_key and attaches PAID_MINT_FEE. The account defaults to the wallet address.`,
		},
		{
			Action:      s.startServe,
			Name:        "serve",
			Usage:       "Start the mint page, the JSON api and prometheus",
			Flags:       []cli.Flag{},
			Category:    "Server",
			Description: `Serves one mint session per connected account.`,
		},
	}

	s.app = app
}
