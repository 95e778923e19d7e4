package env

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeParameters struct {
	pages []*ssm.GetParametersByPathOutput
	calls int
	err   error
}

func (f *fakeParameters) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func TestExportSSM(t *testing.T) {
	log := zap.NewNop().Sugar()
	t.Setenv("NOTES_SSM_PORT", "")
	t.Setenv("NOTES_SSM_DB_URL", "")

	client := &fakeParameters{pages: []*ssm.GetParametersByPathOutput{
		{
			Parameters: []types.Parameter{{Name: aws.String("/notes/prod/NOTES_SSM_PORT"), Value: aws.String("5000")}},
			NextToken:  aws.String("next"),
		},
		{
			Parameters: []types.Parameter{{Name: aws.String("/notes/prod/NOTES_SSM/DB_URL"), Value: aws.String("mongodb://db")}},
		},
	}}

	exported, err := ExportSSM(context.Background(), log, client, "/notes/prod/")
	require.NoError(t, err)
	assert.Equal(t, 2, exported)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "5000", os.Getenv("NOTES_SSM_PORT"))
	assert.Equal(t, "mongodb://db", os.Getenv("NOTES_SSM_DB_URL"))
}

func TestExportSSMError(t *testing.T) {
	log := zap.NewNop().Sugar()

	_, err := ExportSSM(context.Background(), log, &fakeParameters{err: errors.New("denied")}, "/notes/prod/")
	assert.Error(t, err)
}
