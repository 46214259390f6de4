package fund_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openvol/fundledger/internal/fund"
)

func TestRegistry_Resolve(t *testing.T) {
	wingID := uuid.New()

	type testCase struct {
		name      string
		kind      fund.Kind
		id        uuid.UUID
		setupMock func(m *fund.MockDirectory)
		wantName  string
		wantErr   bool
		wantIs    error
	}

	tests := []testCase{
		{
			name: "Found",
			kind: fund.KindWing,
			id:   wingID,
			setupMock: func(m *fund.MockDirectory) {
				m.EXPECT().
					Lookup(gomock.Any(), fund.KindWing, wingID).
					Return("North Wing", true, nil)
			},
			wantName: "North Wing",
		},
		{
			name: "NotFound",
			kind: fund.KindCampaign,
			id:   wingID,
			setupMock: func(m *fund.MockDirectory) {
				m.EXPECT().
					Lookup(gomock.Any(), fund.KindCampaign, wingID).
					Return("", false, nil)
			},
			wantErr: true,
			wantIs:  fund.ErrNotFound,
		},
		{
			name:    "UnknownKind",
			kind:    fund.Kind("committee"),
			id:      wingID,
			wantErr: true,
			wantIs:  fund.ErrUnknownKind,
		},
		{
			name: "LookupError",
			kind: fund.KindDirectAid,
			id:   wingID,
			setupMock: func(m *fund.MockDirectory) {
				m.EXPECT().
					Lookup(gomock.Any(), fund.KindDirectAid, wingID).
					Return("", false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dir := fund.NewMockDirectory(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(dir)
			}

			registry := fund.NewRegistry(dir)
			acct, err := registry.Resolve(context.Background(), tt.kind, tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, acct)

				if tt.wantIs != nil {
					assert.ErrorIs(t, err, tt.wantIs)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, acct.Name)
			assert.Equal(t, fund.Ref{Kind: tt.kind, ID: tt.id}, acct.Ref)
		})
	}
}

func TestRegistry_Resolve_CentralSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Lookup expectation: the central fund must resolve without one.
	dir := fund.NewMockDirectory(ctrl)
	registry := fund.NewRegistry(dir)

	acct, err := registry.Resolve(context.Background(), fund.KindCentral, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, fund.Central, acct.Ref)
	assert.Equal(t, "Central Fund", acct.Name)
}
