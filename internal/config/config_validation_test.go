package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:5000", RequestTimeout: 15 * time.Second},
		Agent:   Agent{WebhookURL: "http://localhost:5005/webhooks/rest/webhook", RequestTimeout: 10 * time.Second},
		Storage: ClientStorage{DSN: "chat.db"},
		Workers: ClientWorkers{AutosaveInterval: 30 * time.Second},
	}
}

func TestServerValidate(t *testing.T) {
	valid := &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/warmwhisper"}},
	}
	require.NoError(t, valid.validate())

	noDSN := &StructuredConfig{App: App{TokenSignKey: "secret"}}
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noKey := &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}}
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)
}

func TestClientValidate(t *testing.T) {
	require.NoError(t, validClientConfig().validate())

	noStorage := validClientConfig()
	noStorage.Storage.DSN = ""
	assert.ErrorIs(t, noStorage.validate(), ErrInvalidStorageConfigs)

	noAdapter := validClientConfig()
	noAdapter.Adapter.BaseURL = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	badAgent := validClientConfig()
	badAgent.Agent.WebhookURL = "localhost:5005"
	assert.ErrorIs(t, badAgent.validate(), ErrInvalidAgentConfigs)

	badWorkers := validClientConfig()
	badWorkers.Workers.AutosaveInterval = 0
	assert.ErrorIs(t, badWorkers.validate(), ErrInvalidWorkerConfigs)
}
