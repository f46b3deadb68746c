package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldt-labs/argdb/schema"
)

func TestRequest_Path(t *testing.T) {
	assert.Equal(t, "Main", schema.Request{Func: "Main"}.Path())
	assert.Equal(t, "Main.Scheduler", schema.Request{Func: "Main", Group: "Scheduler"}.Path())
	assert.Equal(t, "Main.Scheduler.Interval",
		schema.Request{Func: "Main", Group: "Scheduler", Arg: "Interval"}.Path())
}

func TestQuery_WildcardMatch(t *testing.T) {
	row := schema.Row{Func: "Main", Group: "Scheduler", Arg: "Interval", Lang: "en-US"}

	assert.True(t, schema.Query{}.Match(row))
	assert.True(t, schema.Query{Func: "Main"}.Match(row))
	assert.True(t, schema.Query{Func: "Main", Lang: "en-US"}.Match(row))
	assert.True(t, schema.Query{Group: "Scheduler", Arg: "Interval"}.Match(row))

	assert.False(t, schema.Query{Func: "Restart"}.Match(row))
	assert.False(t, schema.Query{Func: "Main", Lang: "zh-CN"}.Match(row))
}

func TestFields_Apply(t *testing.T) {
	row := schema.Row{
		Func: "Main", Group: "Scheduler", Arg: "Interval", Lang: "en-US",
		Name: "old name", Help: "old help", Type: "input", Value: 10,
	}

	schema.Fields{Name: "Interval", Value: 20}.Apply(&row)
	assert.Equal(t, "Interval", row.Name)
	assert.Equal(t, "old help", row.Help)
	assert.Equal(t, "input", row.Type)
	assert.Equal(t, 20, row.Value)

	// Zero Fields is a no-op
	before := row
	schema.Fields{}.Apply(&row)
	assert.Equal(t, before, row)
	assert.True(t, schema.Fields{}.IsZero())
}

func TestRow_PathAndInfo(t *testing.T) {
	row := schema.Row{Func: "Main", Group: "Scheduler", Arg: "Interval"}
	assert.Equal(t, "Main.Scheduler.Interval", row.Path())
	assert.False(t, row.IsInfo())

	info := schema.Row{Func: "Main", Group: "Scheduler", Arg: schema.Info}
	assert.Equal(t, "Main.Scheduler._info", info.Path())
	assert.True(t, info.IsInfo())

	funcInfo := schema.Row{Func: "Main", Group: schema.Info, Arg: schema.Info}
	assert.True(t, funcInfo.IsInfo())
}
