package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/domain/cipher"
)

// Flags shared by encrypt and decrypt. Only one of the pair runs per
// invocation, so a single set is safe.
var (
	transformKeywordFlag string
	transformPrimerFlag  string
	transformPolicyFlag  string
	transformPatternFlag string
	encryptWidthFlag     int
	decryptWidthFlag     int
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text with a keyed alphabet and digit keystream",
	Long: "Each letter is shifted through the cipher alphabet by the next keystream\n" +
		"digit. Case survives, and non-letters pass through while still consuming\n" +
		"a digit. Text comes from the argument, or from stdin when omitted.",
	Args: maximumArgs(1),
	RunE: runEncrypt,
}

func init() {
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringVar(&transformKeywordFlag, "keyword", "none", "Alphabet keyword (none = standard alphabet)")
		c.Flags().StringVar(&transformPrimerFlag, "primer", "", "Keystream primer digits, e.g. 31415")
		c.Flags().StringVar(&transformPolicyFlag, "policy", "standard", "Modulus policy: standard, berlin, base5, base12")
		c.Flags().StringVar(&transformPatternFlag, "pattern", "", "Cyclic modulus pattern like 5,12 (overrides --policy)")
	}
	encryptCmd.Flags().IntVar(&encryptWidthFlag, "width", 0, "Grid width for display (0 = single line)")
	decryptCmd.Flags().IntVar(&decryptWidthFlag, "width", 21, "Grid width for display (0 = single line)")
}

// textArg returns the positional text, falling back to stdin so the
// transforms can sit in a pipe. A single trailing newline is stripped.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// transformStream builds the keystream both transforms run on.
func transformStream(text string) ([]int, cipher.Alphabet, error) {
	policy, err := resolvePolicy(transformPolicyFlag, transformPatternFlag)
	if err != nil {
		return nil, cipher.Alphabet{}, err
	}
	stream, err := cipher.GenerateKeystream(transformPrimerFlag, len(text), policy)
	if err != nil {
		return nil, cipher.Alphabet{}, usagef("primer %q: %v", transformPrimerFlag, err)
	}
	return stream, cipher.BuildAlphabet(transformKeywordFlag), nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	stream, alphabet, err := transformStream(text)
	if err != nil {
		return err
	}
	ciphertext := cipher.Encrypt(text, stream, alphabet)
	if encryptWidthFlag > 0 {
		fmt.Println(formatGrid(ciphertext, encryptWidthFlag))
		return nil
	}
	fmt.Println(ciphertext)
	return nil
}
