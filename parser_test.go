package tezos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type wantEntryPoint struct {
	name      string
	params    []Parameter
	structure string
}

func assertEntryPoints(t *testing.T, got []*EntryPoint, want []wantEntryPoint) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, got[i].Name(), "entry point %d name", i)
		assert.Equal(t, w.params, got[i].Parameters(), "entry point %d parameters", i)
		assert.Equal(t, w.structure, got[i].Structure(), "entry point %d structure", i)
	}
}

func TestParseParameterOr(t *testing.T) {
	eps, err := ParseParameter("parameter (or (int %deposit) (string %note));")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Deposit", []Parameter{{Name: "", Type: "int"}}, "(Left $PARAM)"},
		{"Note", []Parameter{{Name: "", Type: "string"}}, "(Right $PARAM)"},
	})
}

func TestParseParameterPair(t *testing.T) {
	eps, err := ParseParameter("parameter (pair (int %amount) (address %to));")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"", []Parameter{{Name: "Amount", Type: "int"}, {Name: "To", Type: "address"}}, "(Pair $PARAM $PARAM)"},
	})

	invocation, err := eps[0].InvocationString("10", `"tz1abc"`)
	require.NoError(t, err)
	assert.Equal(t, `(Pair 10 "tz1abc")`, invocation)
}

func TestParseParameterNamedPair(t *testing.T) {
	eps, err := ParseParameter("parameter (pair %transfer (address :from) (nat :value));")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Transfer", []Parameter{{Name: "From", Type: "address"}, {Name: "Value", Type: "nat"}}, "(Pair $PARAM $PARAM)"},
	})
}

func TestParseParameterNestedOr(t *testing.T) {
	eps, err := ParseParameter(`
		parameter
		  (or (or (nat %mint) (nat %burn))
		      (or (pair %transfer (address :to) (nat :amount))
		          (unit %pause)));`)
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Mint", []Parameter{{Type: "nat"}}, "(Left (Left $PARAM))"},
		{"Burn", []Parameter{{Type: "nat"}}, "(Left (Right $PARAM))"},
		{"Transfer", []Parameter{{Name: "To", Type: "address"}, {Name: "Amount", Type: "nat"}}, "(Right (Left (Pair $PARAM $PARAM)))"},
		{"Pause", []Parameter{{Type: "unit"}}, "(Right (Right $PARAM))"},
	})

	invocation, err := eps[2].InvocationString(`"tz1abc"`, "100")
	require.NoError(t, err)
	assert.Equal(t, `(Right (Left (Pair "tz1abc" 100)))`, invocation)
}

func TestParseParameterPairOfOr(t *testing.T) {
	eps, err := ParseParameter("parameter (pair %call (address :target) (or (nat %amount) (unit %all)));")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Call", []Parameter{{Name: "Target", Type: "address"}, {Type: "nat"}}, "(Pair $PARAM (Left $PARAM))"},
		{"Call", []Parameter{{Name: "Target", Type: "address"}, {Type: "unit"}}, "(Pair $PARAM (Right $PARAM))"},
	})
}

func TestParseParameterWrappers(t *testing.T) {
	eps, err := ParseParameter(`parameter (or (option %maybe (int :value))
		(or (map %balances string nat)
		    (or (list %batch (pair address nat))
		        (lambda %run unit (list operation)))));`)
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Maybe", []Parameter{{Name: "Value", Type: "option (int)"}}, "(Left ($PARAM))"},
		{"Balances", []Parameter{{Type: "map (string) (nat)"}}, "(Right (Left ($PARAM)))"},
		{"Batch", []Parameter{{Type: "list (pair (address) (nat))"}}, "(Right (Right (Left ($PARAM))))"},
		{"Run", []Parameter{{Type: "lambda (unit) (list (operation))"}}, "(Right (Right (Right ($PARAM))))"},
	})

	invocation, err := eps[2].InvocationString(`{ Pair "tz1abc" 1 }`)
	require.NoError(t, err)
	assert.Equal(t, `(Right (Right (Left ({ Pair "tz1abc" 1 }))))`, invocation)
}

func TestParseParameterOrPrefix(t *testing.T) {
	t.Run("type annotation", func(t *testing.T) {
		eps, err := ParseParameter("parameter (or (or :admin (unit %pause) (unit %resume)) (nat %deposit));")
		require.NoError(t, err)
		assert.Equal(t, []string{"Admin.Pause", "Admin.Resume", "Deposit"}, EntryPointNames(eps))
	})

	t.Run("field annotation", func(t *testing.T) {
		eps, err := ParseParameter("parameter (or (or %owner (address %set) (unit %clear)) (nat %deposit));")
		require.NoError(t, err)
		assert.Equal(t, []string{"Owner.Set", "Owner.Clear", "Deposit"}, EntryPointNames(eps))
	})

	t.Run("unnamed branches take the prefix", func(t *testing.T) {
		eps, err := ParseParameter("parameter (or :choice int string);")
		require.NoError(t, err)
		assert.Equal(t, []string{"Choice", "Choice"}, EntryPointNames(eps))
	})
}

func TestParseParameterLegacyAnnotations(t *testing.T) {
	eps, err := ParseParameter("parameter (or (nat %_Liq_entry_mint) (pair %_Liq_entry_swap (nat :in) (nat :out)));")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"Mint", []Parameter{{Type: "nat"}}, "(Left $PARAM)"},
		{"Swap", []Parameter{{Name: "In", Type: "nat"}, {Name: "Out", Type: "nat"}}, "(Right (Pair $PARAM $PARAM))"},
	})
}

func TestParseParameterScalarRoot(t *testing.T) {
	eps, err := ParseParameter("parameter unit;")
	require.NoError(t, err)

	assertEntryPoints(t, eps, []wantEntryPoint{
		{"", []Parameter{{Type: "unit"}}, "$PARAM"},
	})

	pair, err := eps[0].InvocationPair("Unit")
	require.NoError(t, err)
	assert.Equal(t, Invocation{EntryPoint: "", Value: "Unit"}, pair)
}

func TestParseType(t *testing.T) {
	eps, err := ParseType("(or (int %deposit) (string %note))")
	require.NoError(t, err)
	assert.Equal(t, []string{"Deposit", "Note"}, EntryPointNames(eps))

	_, err = ParseType("parameter int;")
	assert.ErrorIs(t, err, ErrGrammar)
}

func TestParseParameterGrammarErrors(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		msg       string
	}{
		{"missing keyword", "(or int nat);", "expected 'parameter'"},
		{"missing semicolon", "parameter int", "expected ';'"},
		{"unbalanced", "parameter (or int nat;", "expected ')'"},
		{"extra closing paren", "parameter int);", "expected ';'"},
		{"missing argument", "parameter (pair int);", "expected type"},
		{"trailing input", "parameter int; int", "expected end of input"},
		{"unknown type", "parameter (or int float);", "unknown type"},
		{"empty", "", "expected 'parameter'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eps, err := ParseParameter(tt.signature)
			assert.Nil(t, eps)
			require.ErrorIs(t, err, ErrGrammar)

			var grammarErr *GrammarError
			require.ErrorAs(t, err, &grammarErr)
			assert.Equal(t, tt.msg, grammarErr.Msg)
		})
	}
}

func TestParseParameterMaxDepth(t *testing.T) {
	signature := "parameter (option (option (option int)));"

	_, err := ParseParameter(signature, WithMaxDepth(2))
	var grammarErr *GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, "type nesting exceeds maximum depth", grammarErr.Msg)

	eps, err := ParseParameter(signature, WithMaxDepth(7))
	require.NoError(t, err)
	require.Len(t, eps, 1)
	assert.Equal(t, "option (option (option (int)))", eps[0].Parameters()[0].Type)
}

func TestParseParameterIdempotent(t *testing.T) {
	const signature = "parameter (or (pair %transfer (address :to) (nat :amount)) (or (unit %pause) (option %admin address)));"

	first, err := ParseParameter(signature)
	require.NoError(t, err)
	second, err := ParseParameter(signature)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.NotSame(t, first[i], second[i])
		assert.Equal(t, first[i].Name(), second[i].Name())
		assert.Equal(t, first[i].Parameters(), second[i].Parameters())
		assert.Equal(t, first[i].Structure(), second[i].Structure())
		assert.Equal(t, first[i].Template(), second[i].Template())
	}
}

func TestParseParameterLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := ParseParameter("parameter (or (int %deposit) (string %note));", WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("compiled parameter type").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["entrypoints"])
	assert.Equal(t, []interface{}{"Deposit", "Note"}, fields["names"])
}

func TestParseParameterNilLogger(t *testing.T) {
	_, err := ParseParameter("parameter int;", WithLogger(nil))
	assert.NoError(t, err)
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"deposit": "Deposit",
		"Deposit": "Deposit",
		"_hidden": "_hidden",
		"élan":    "Élan",
	}
	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), "capitalize(%q)", in)
	}
}

func TestGrammarErrorMessage(t *testing.T) {
	_, err := ParseParameter("parameter (or int float);")
	require.Error(t, err)
	assert.Equal(t, `tezos: grammar error at offset 18 near "float": unknown type`, err.Error())
	assert.True(t, errors.Is(err, ErrGrammar))

	_, err = ParseParameter("parameter int")
	require.Error(t, err)
	assert.Equal(t, "tezos: grammar error at offset 13: expected ';'", err.Error())
}
