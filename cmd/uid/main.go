package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/run"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/uid/pkg/basen"
	"github.com/outofforest/uid/pkg/uniqueid"
)

var alphabets = map[string]string{
	"base16":    basen.Base16,
	"base32":    basen.Base32,
	"base32hex": basen.Base32Hex,
	"base62":    basen.Base62,
	"base64":    basen.Base64,
	"base64url": basen.Base64URL,
	"base85":    basen.Base85,
}

func main() {
	count := flag.Int("count", 1, "number of identifiers to generate")
	alphabet := flag.String("alphabet", "base62", "encoding alphabet: base16, base32, base32hex, base62, base64, base64url or base85")
	long := flag.Bool("long", false, "generate 128-bit UUID-backed identifiers instead of 56-bit ones")
	flag.Parse()

	run.New().Run(context.Background(), "uid", func(ctx context.Context) error {
		alpha, ok := alphabets[*alphabet]
		if !ok {
			return errors.Errorf("unknown alphabet %q", *alphabet)
		}
		if *count < 1 {
			return errors.Errorf("count must be positive, got %d", *count)
		}

		ids := make([]string, *count)
		err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
			for i := range ids {
				spawn(fmt.Sprintf("id-%d", i), parallel.Continue, func(ctx context.Context) error {
					var err error
					if *long {
						ids[i], err = uniqueid.UniqueIDString(nil, alpha)
					} else {
						ids[i], err = uniqueid.RandomIDString(alpha)
					}
					return err
				})
			}
			return nil
		})
		if err != nil {
			return err
		}

		logger.Get(ctx).Info("Generated identifiers",
			zap.Int("count", *count), zap.String("alphabet", *alphabet))
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	})
}
