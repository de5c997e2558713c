package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/pkg/hexcodec"
)

func newHexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "16進バイト列テキストの整形と検証",
	}
	cmd.AddCommand(newHexFmtCommand())
	return cmd
}

func newHexFmtCommand() *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "fmt [text...]",
		Short: "16進テキストを正規形（16トークン/行・大文字）に整形する",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case inputFile != "":
				payload, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("入力を読み込めません: %w", err)
				}
				text = string(payload)
			case len(args) > 0:
				for i, arg := range args {
					if i > 0 {
						text += " "
					}
					text += arg
				}
			default:
				payload, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("入力を読み込めません: %w", err)
				}
				text = string(payload)
			}

			count, invalid := hexcodec.TokenStats(text)
			if len(invalid) > 0 {
				return fmt.Errorf("不正なトークンがあります: %s", hexcodec.DescribeInvalid(invalid))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hexcodec.Normalize(text))
			fmt.Fprintf(cmd.ErrOrStderr(), "%dバイト\n", count)
			return nil
		},
	}
	cmd.Flags().StringVar(&inputFile, "file", "", "整形する16進テキストのファイル")
	return cmd
}
