package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunPropertiesToggles(t *testing.T) {
	node := mustNode(t, `<w:rPr `+testNS+`>
		<w:b/>
		<w:i w:val="0"/>
		<w:caps w:val="true"/>
	</w:rPr>`)

	props, err := parseRunProperties(node)
	require.NoError(t, err)
	require.Len(t, props.Properties, 3)
	assert.Equal(t, Bold(true), props.Properties[0], "empty element means on")
	assert.Equal(t, Italic(false), props.Properties[1])
	assert.Equal(t, Caps(true), props.Properties[2])
}

func TestParseRunPropertiesOrderPreserved(t *testing.T) {
	node := mustNode(t, `<w:rPr `+testNS+`>
		<w:sz w:val="28"/>
		<w:b/>
		<w:color w:val="0000FF"/>
	</w:rPr>`)

	props, err := parseRunProperties(node)
	require.NoError(t, err)
	require.Len(t, props.Properties, 3)
	_, ok := props.Properties[0].(Size)
	assert.True(t, ok)
	_, ok = props.Properties[1].(Bold)
	assert.True(t, ok)
	_, ok = props.Properties[2].(Color)
	assert.True(t, ok)
}

func TestParseRunPropertyMeasures(t *testing.T) {
	node := mustNode(t, `<w:spacing `+testNS+` w:val="-20"/>`)
	p, err := parseRunProperty(node)
	require.NoError(t, err)
	cs, ok := p.(CharacterSpacing)
	require.True(t, ok)
	require.NotNil(t, cs.Twips)
	assert.Equal(t, int64(-20), *cs.Twips)

	node = mustNode(t, `<w:sz `+testNS+` w:val="12pt"/>`)
	p, err = parseRunProperty(node)
	require.NoError(t, err)
	sz, ok := p.(Size)
	require.True(t, ok)
	require.NotNil(t, sz.Measure)
	assert.Equal(t, 12.0, sz.Measure.Value)
}

func TestParseTextScaleDefault(t *testing.T) {
	node := mustNode(t, `<w:w `+testNS+`/>`)
	p, err := parseRunProperty(node)
	require.NoError(t, err)
	assert.Equal(t, TextScale(100), p, "missing w:val means no scaling")

	node = mustNode(t, `<w:w `+testNS+` w:val="200%"/>`)
	p, err = parseRunProperty(node)
	require.NoError(t, err)
	assert.Equal(t, TextScale(200), p)

	node = mustNode(t, `<w:w `+testNS+` w:val="650%"/>`)
	_, err = parseRunProperty(node)
	assert.Error(t, err, "scale is capped at 600%")
}

func TestParseRunPropertyNonMember(t *testing.T) {
	node := mustNode(t, `<w:pStyle `+testNS+` w:val="Heading1"/>`)
	_, err := parseRunProperty(node)
	assert.True(t, IsNotGroupMember(err))
}

func TestParseRunPropertiesChange(t *testing.T) {
	node := mustNode(t, `<w:rPr `+testNS+`>
		<w:b/>
		<w:rPrChange w:id="7" w:author="reviewer" w:date="2024-01-01T00:00:00Z">
			<w:rPr><w:i/></w:rPr>
		</w:rPrChange>
	</w:rPr>`)

	props, err := parseRunProperties(node)
	require.NoError(t, err)
	require.Len(t, props.Properties, 1)
	require.NotNil(t, props.Change)
	assert.Equal(t, "reviewer", props.Change.Author)
	assert.Equal(t, int64(7), props.Change.ID)
	require.Len(t, props.Change.Properties, 1)
	assert.Equal(t, Italic(true), props.Change.Properties[0])
}

func TestParseRunPropertiesChangeMissingSnapshot(t *testing.T) {
	node := mustNode(t, `<w:rPrChange `+testNS+` w:id="7" w:author="reviewer"/>`)
	_, err := parseRunPropertiesChange(node)
	assert.True(t, IsMissingChild(err))
}

func TestParseParaRunProperties(t *testing.T) {
	node := mustNode(t, `<w:rPr `+testNS+`>
		<w:ins w:id="1" w:author="alice"/>
		<w:b/>
		<w:del w:id="2" w:author="bob"/>
	</w:rPr>`)

	props, err := parseParaRunProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.TrackChanges)
	require.NotNil(t, props.TrackChanges.Inserted)
	assert.Equal(t, "alice", props.TrackChanges.Inserted.Author)
	require.NotNil(t, props.TrackChanges.Deleted)
	assert.Equal(t, "bob", props.TrackChanges.Deleted.Author)
	assert.Nil(t, props.TrackChanges.MovedFrom)
	require.Len(t, props.Properties, 1)
	assert.Equal(t, Bold(true), props.Properties[0])
}

func TestParseTrackChangeRequiresAuthorAndID(t *testing.T) {
	node := mustNode(t, `<w:ins `+testNS+` w:id="1"/>`)
	_, err := parseTrackChange(node)
	assert.True(t, IsMissingAttribute(err))

	node = mustNode(t, `<w:ins `+testNS+` w:author="alice"/>`)
	_, err = parseTrackChange(node)
	assert.True(t, IsMissingAttribute(err))
}
