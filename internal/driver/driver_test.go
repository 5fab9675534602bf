package driver_test

import (
	"strings"
	"testing"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/css"
	"github.com/arjunvale/domselect/internal/driver"
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *store.Document {
	t.Helper()
	doc, err := build.BuildFromHTML(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func compileCSS(t *testing.T, sel string) driver.Selectable {
	t.Helper()
	compiled, err := css.Compile(sel)
	require.NoError(t, err)
	return compiled
}

func TestAllUnionsAcrossSelectors(t *testing.T) {
	doc := parseHTML(t, `<div id=main><p class=a>1</p><p class=b>2</p></div>`)
	results, err := driver.All(driver.Doc(doc), []driver.Selectable{
		compileCSS(t, ".a"),
		compileCSS(t, "p"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].Text())
	assert.Equal(t, "2", results[1].Text())
}

func TestOneReturnsFirstMatch(t *testing.T) {
	doc := parseHTML(t, `<ul><li>a</li><li>b</li></ul>`)
	res, ok, err := driver.One(driver.Doc(doc), []driver.Selectable{compileCSS(t, "li")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", res.Text())
}

func TestOneFalseWhenNoMatch(t *testing.T) {
	doc := parseHTML(t, `<ul><li>a</li></ul>`)
	_, ok, err := driver.One(driver.Doc(doc), []driver.Selectable{compileCSS(t, "span")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFromResultRestrictsToSubtree(t *testing.T) {
	doc := parseHTML(t, `<div id=a><p>inside</p></div><p>outside</p>`)
	anchor, ok, err := driver.One(driver.Doc(doc), []driver.Selectable{compileCSS(t, "#a")})
	require.NoError(t, err)
	require.True(t, ok)

	results, err := driver.All(driver.FromResult(anchor), []driver.Selectable{compileCSS(t, "p")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "inside", results[0].Text())
}

func TestSelectWithAllAccumulator(t *testing.T) {
	doc := parseHTML(t, `<ul><li>a</li><li>b</li><li>c</li></ul>`)
	val, err := driver.Select(driver.Doc(doc), []driver.Selectable{compileCSS(t, "li")}, driver.Context{
		Accumulator: driver.AllAccumulator(),
	})
	require.NoError(t, err)
	results, ok := val.([]extract.Result)
	require.True(t, ok)
	assert.Len(t, results, 3)
}

func TestSelectWithOneAccumulatorStopsEarly(t *testing.T) {
	doc := parseHTML(t, `<ul><li>a</li><li>b</li><li>c</li></ul>`)
	val, err := driver.Select(driver.Doc(doc), []driver.Selectable{compileCSS(t, "li")}, driver.Context{
		Accumulator: driver.OneAccumulator(),
	})
	require.NoError(t, err)
	res, ok := val.(extract.Result)
	require.True(t, ok)
	assert.Equal(t, "a", res.Text())
}

func TestSelectWithoutAccumulatorFails(t *testing.T) {
	doc := parseHTML(t, `<p>x</p>`)
	_, err := driver.Select(driver.Doc(doc), []driver.Selectable{compileCSS(t, "p")}, driver.Context{})
	require.Error(t, err)
	var noAcc *driver.NoAccumulator
	assert.ErrorAs(t, err, &noAcc)
}
