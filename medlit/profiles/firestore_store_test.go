package profiles

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set
func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()

	client, err := firestore.NewClient(ctx, "medlit-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewFirestoreStore(client)
	svc := NewService(store)
	uid := uuid.NewString()

	_, err = store.Get(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.UpdateOnboarding(ctx, uid, Update{About: strPtr("x")}), ErrNotFound)

	require.NoError(t, svc.RecordStat(ctx, uid, StatAIInteractions))
	require.NoError(t, svc.SaveOnboarding(ctx, uid, Onboarding{
		Profession: "professional",
		Field:      "emergency",
		Frequency:  "daily",
	}))
	require.NoError(t, svc.UpdateProfile(ctx, uid, Update{About: strPtr("night shifts")}))

	data := svc.ProfileData(ctx, uid)
	require.NoError(t, data.Err)
	assert.True(t, svc.OnboardingStatus(ctx, uid).Completed)
	assert.Equal(t, "emergency", data.Onboarding.Field)
	assert.Equal(t, "night shifts", data.Onboarding.About)
	assert.Equal(t, int64(1), data.Stats.AIInteractions)
}
