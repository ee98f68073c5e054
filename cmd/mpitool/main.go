package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/RosZad/mpi/pkg/mpi"
)

func main() {
	defer glog.Flush()

	rootCmd := &cobra.Command{
		Use:   "mpitool",
		Short: "Multi-precision integer arithmetic from the command line",
	}

	rootCmd.AddCommand(
		newGenPrimeCmd(),
		newIsPrimeCmd(),
		newModExpCmd(),
		newGCDCmd(),
		newInvCmd(),
		newStringCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("mpitool: %v", err)
		os.Exit(1)
	}
}

func newGenPrimeCmd() *cobra.Command {
	var bits int
	var dh bool

	cmd := &cobra.Command{
		Use:   "genprime",
		Short: "Generate a random prime (or safe prime with --dh)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := mpi.GenPrime(bits, dh, mpi.CryptoRand)
			if err != nil {
				return err
			}
			fmt.Println(p.Text(16))
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 512, "bit length of the generated prime")
	cmd.Flags().BoolVar(&dh, "dh", false, "generate a Diffie-Hellman safe prime")
	return cmd
}

func newIsPrimeCmd() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "isprime VALUE",
		Short: "Report whether VALUE is probably prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x := mpi.NewInt()
			if _, err := x.SetString(args[0], radix); err != nil {
				return err
			}
			err := mpi.IsPrime(x, mpi.CryptoRand)
			if err == nil {
				fmt.Println("probably prime")
				return nil
			}
			if e, ok := err.(*mpi.Error); ok && e.Kind == mpi.NotAcceptable {
				fmt.Println("composite")
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 10, "radix (2-16) of VALUE")
	return cmd
}

func newModExpCmd() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "modexp BASE EXP MOD",
		Short: "Compute BASE^EXP mod MOD",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, e, n := mpi.NewInt(), mpi.NewInt(), mpi.NewInt()
			if _, err := a.SetString(args[0], radix); err != nil {
				return err
			}
			if _, err := e.SetString(args[1], radix); err != nil {
				return err
			}
			if _, err := n.SetString(args[2], radix); err != nil {
				return err
			}
			z := mpi.NewInt()
			if err := mpi.ExpMod(z, a, e, n, nil); err != nil {
				return err
			}
			fmt.Println(z.Text(radix))
			return nil
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 16, "radix (2-16) of the arguments and output")
	return cmd
}

func newGCDCmd() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "gcd A B",
		Short: "Compute gcd(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := mpi.NewInt(), mpi.NewInt()
			if _, err := a.SetString(args[0], radix); err != nil {
				return err
			}
			if _, err := b.SetString(args[1], radix); err != nil {
				return err
			}
			z := mpi.NewInt()
			if err := mpi.GCD(z, a, b); err != nil {
				return err
			}
			fmt.Println(z.Text(radix))
			return nil
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 16, "radix (2-16) of the arguments and output")
	return cmd
}

func newInvCmd() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "inv A N",
		Short: "Compute A^-1 mod N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, n := mpi.NewInt(), mpi.NewInt()
			if _, err := a.SetString(args[0], radix); err != nil {
				return err
			}
			if _, err := n.SetString(args[1], radix); err != nil {
				return err
			}
			z := mpi.NewInt()
			if err := mpi.InvMod(z, a, n); err != nil {
				return err
			}
			fmt.Println(z.Text(radix))
			return nil
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 16, "radix (2-16) of the arguments and output")
	return cmd
}

func newStringCmd() *cobra.Command {
	var inRadix, outRadix int

	cmd := &cobra.Command{
		Use:   "string VALUE",
		Short: "Convert VALUE between radixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x := mpi.NewInt()
			if _, err := x.SetString(args[0], inRadix); err != nil {
				return err
			}
			fmt.Println(x.Text(outRadix))
			return nil
		},
	}
	cmd.Flags().IntVar(&inRadix, "from", 10, "input radix (2-16)")
	cmd.Flags().IntVar(&outRadix, "to", 16, "output radix (2-16)")
	return cmd
}
