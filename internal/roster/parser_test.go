package roster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/roster"
)

func TestParser_Parse(t *testing.T) {
	type args struct {
		content string
	}

	type testCase struct {
		name   string
		args   args
		verify func(t *testing.T, got []guide.CreateParams)
	}

	tests := []testCase{
		{
			name: "SemicolonWithTitleRows",
			args: args{
				content: "Kayak guides 2025;;\n" +
					";;\n" +
					"Name;Rank;Email\n" +
					"Sipho Dlamini;senior;sipho@example.com\n" +
					"Anna Smit; Intermediate ;\n" +
					";;\n",
			},
			verify: func(t *testing.T, got []guide.CreateParams) {
				require.Len(t, got, 2)
				assert.Equal(t, "Sipho Dlamini", got[0].Name)
				assert.Equal(t, guide.RankSenior, got[0].Rank)
				require.NotNil(t, got[0].Email)
				assert.Equal(t, "sipho@example.com", *got[0].Email)
				assert.Equal(t, guide.RankIntermediate, got[1].Rank)
				assert.Nil(t, got[1].Email)
			},
		},
		{
			name: "CommaReorderedAliases",
			args: args{
				content: "E-mail,Level,Guide Name\n" +
					"jo@example.com,JUNIOR,Jo\n" +
					"\"tim@example.com\",trainee,\"Tim, the new one\"\n",
			},
			verify: func(t *testing.T, got []guide.CreateParams) {
				require.Len(t, got, 2)
				assert.Equal(t, "Jo", got[0].Name)
				assert.Equal(t, guide.RankJunior, got[0].Rank)
				assert.Equal(t, "Tim, the new one", got[1].Name)
				assert.Equal(t, guide.RankTrainee, got[1].Rank)
			},
		},
		{
			name: "InvalidRankPassedThrough",
			args: args{content: "Name,Rank\nBob,Captain\n"},
			verify: func(t *testing.T, got []guide.CreateParams) {
				require.Len(t, got, 1)
				assert.Equal(t, guide.Rank("CAPTAIN"), got[0].Rank)
				assert.False(t, got[0].Rank.Valid())
			},
		},
		{
			name: "NoEmailColumn",
			args: args{content: "name;rank\nLerato;senior\n"},
			verify: func(t *testing.T, got []guide.CreateParams) {
				require.Len(t, got, 1)
				assert.Nil(t, got[0].Email)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roster.NewParser().Parse(strings.NewReader(tt.args.content))
			require.NoError(t, err)

			tt.verify(t, got)
		})
	}
}

func TestParser_Parse_Windows1252(t *testing.T) {
	content, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Name;Rank\nZoë Müller;Senior\nRené Botha;Junior\n"))
	require.NoError(t, err)

	got, err := roster.NewParser().Parse(bytes.NewReader(content))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Zoë Müller", got[0].Name)
	assert.Equal(t, "René Botha", got[1].Name)
}

func TestParser_Parse_NoHeader(t *testing.T) {
	_, err := roster.NewParser().Parse(strings.NewReader("Sipho,Senior\nAnna,Junior\n"))
	assert.ErrorIs(t, err, roster.ErrNoHeader)
}
