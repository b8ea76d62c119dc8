package notif

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notistack/internal/common"
)

func TestRegistry_KeysPreserveOrder(t *testing.T) {
	registry := NewRegistry(
		RegistryEntry{Key: "forum_topic"},
		RegistryEntry{Key: "chat_channel"},
		RegistryEntry{Key: "blog_post"},
	)

	assert.Equal(t, []string{"forum_topic", "chat_channel", "blog_post"}, registry.Keys())
}

func TestRegistry_DuplicateKeyKeepsFirst(t *testing.T) {
	first := staticRenderer{details: common.NotificationDetails{"v": "first"}}
	registry := NewRegistry(
		RegistryEntry{Key: "forum_topic", Renderer: first},
		RegistryEntry{Key: "forum_topic", Renderer: failingRenderer{}},
	)

	assert.Equal(t, []string{"forum_topic"}, registry.Keys())
	assert.Equal(t, first, registry.Renderer("forum_topic"))
}

func TestRegistry_Renderer(t *testing.T) {
	registry := NewRegistry(RegistryEntry{Key: "forum_topic"})

	assert.Nil(t, registry.Renderer("forum_topic"))
	assert.Nil(t, registry.Renderer("unknown_type"))
}
