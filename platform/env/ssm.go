package env

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"
	"os"
	"strings"
)

// ExportSSM reads every parameter stored under path in the SSM Parameter Store and exports it as an env var. The var
// name is the parameter name relative to path, with inner slashes replaced by underscores, so
// "/notes/prod/DATABASE_CONNECTION_URL" under "/notes/prod/" becomes DATABASE_CONNECTION_URL.
func ExportSSM(ctx context.Context, log *zap.SugaredLogger, client ssm.GetParametersByPathAPIClient, path string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	exported := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return exported, fmt.Errorf("get parameters by path %s: %w", path, err)
		}
		for _, param := range page.Parameters {
			key := strings.TrimPrefix(strings.TrimPrefix(aws.ToString(param.Name), path), "/")
			key = strings.ReplaceAll(key, "/", "_")
			if key == "" {
				continue
			}
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return exported, fmt.Errorf("set env var %s: %w", key, err)
			}
			exported++
		}
	}

	log.Infow("config", "ssmPath", path, "exported", exported)
	return exported, nil
}
