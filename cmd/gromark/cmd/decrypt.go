package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/cipher"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypt text enciphered with a keyed alphabet and digit keystream",
	Args:  maximumArgs(1),
	RunE:  runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	stream, alphabet, err := transformStream(text)
	if err != nil {
		return err
	}
	plaintext := cipher.Decrypt(text, stream, alphabet)
	if decryptWidthFlag > 0 {
		fmt.Println(formatGrid(plaintext, decryptWidthFlag))
		return nil
	}
	fmt.Println(plaintext)
	return nil
}
