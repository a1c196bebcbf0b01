package color

import (
	"errors"
	"fmt"

	"github.com/wudi/pdfcolor/observability"
	"github.com/wudi/pdfcolor/pdfobj"
	"github.com/wudi/pdfcolor/recovery"
)

// Parser turns a PDF color-space descriptor into a concrete Space,
// resolving indirect references and caching the result.
type Parser struct {
	Resolver    pdfobj.Resolver
	Resources   pdfobj.Dictionary // optional, for unresolved names
	TintFactory TintFactory
	Cache       Cache
	Log         observability.Logger
	Recovery    recovery.Strategy
}

// NewParser builds a Parser, defaulting Cache, Log, and Recovery when
// nil.
func NewParser(resolver pdfobj.Resolver, resources pdfobj.Dictionary, tintFactory TintFactory, cache Cache, log observability.Logger) *Parser {
	if cache == nil {
		cache = NewMapCache()
	}
	log = observability.OrDefault(log)
	return &Parser{
		Resolver:    resolver,
		Resources:   resources,
		TintFactory: tintFactory,
		Cache:       cache,
		Log:         log,
		Recovery: recovery.Default{
			MustPropagate: func(err error) bool { return errors.Is(err, pdfobj.ErrMissingData) },
		},
	}
}

// Parse resolves cs to a Space. cs may be a Name, a Reference, or an
// Array.
func (p *Parser) Parse(cs pdfobj.Object) (Space, error) {
	var ref pdfobj.ObjectRef
	hasRef := false
	if r, ok := cs.(pdfobj.Reference); ok {
		ref = r.Ref()
		hasRef = true
		if sp, ok := p.Cache.GetByRef(ref); ok {
			return sp, nil
		}
	}

	// The cache-probe resolution: a missing-data sentinel must propagate
	// so the caller can retry once more of the document is loaded; any
	// other resolver error here is swallowed: it is logged as a warning
	// and Parse returns a FormatError in its place, since there is no
	// resolved descriptor left to parse.
	resolved, err := p.Resolver.FetchIfRef(cs)
	if err != nil {
		if p.Recovery.OnError(err, recovery.Location{Component: "cache probe"}) == recovery.ActionFail {
			return nil, err
		}
		p.Log.Warn("color-space cache probe resolver error swallowed", observability.Error("err", err))
		return nil, NewFormatError("", "color-space descriptor could not be resolved")
	}

	sp, name, err := p.parseResolved(resolved)
	if err != nil {
		return nil, err
	}

	p.Cache.Set(name, ref, hasRef, sp)
	return sp, nil
}

// ParseAsync has the same contract as Parse but asserts the cache was
// already missed before being called — the body contains no
// suspension points, matching a single-threaded, fully synchronous
// pipeline. Callers that can await should do the cache lookup
// themselves before awaiting ParseAsync.
func (p *Parser) ParseAsync(cs pdfobj.Object, cacheMissed bool) (Space, error) {
	if !cacheMissed {
		return nil, errors.New("pdfcolor: ParseAsync called without a preceding cache miss")
	}
	return p.Parse(cs)
}

func (p *Parser) parseResolved(obj pdfobj.Object) (Space, string, error) {
	switch v := obj.(type) {
	case pdfobj.Name:
		sp, err := p.parseName(v.Value())
		return sp, v.Value(), err
	case pdfobj.Array:
		sp, err := p.parseArray(v)
		return sp, "", err
	default:
		return nil, "", NewFormatError("", fmt.Sprintf("color-space descriptor has unexpected type %T", obj))
	}
}

func (p *Parser) parseName(name string) (Space, error) {
	switch name {
	case "G", "DeviceGray":
		return DeviceGray, nil
	case "RGB", "DeviceRGB":
		return DeviceRGB, nil
	case "CMYK", "DeviceCMYK":
		return DeviceCMYK, nil
	case "Pattern":
		return NewPattern(nil, p.Log), nil
	}

	if sp, ok := p.Cache.GetByName(name); ok {
		return sp, nil
	}
	if p.Resources == nil {
		return nil, NewFormatError(name, "unresolved color-space name and no resources dictionary")
	}
	csDict, ok := p.Resources.Get("ColorSpace")
	if !ok {
		return nil, NewFormatError(name, "resources has no ColorSpace dictionary")
	}
	dict, ok := csDict.(pdfobj.Dictionary)
	if !ok {
		return nil, NewFormatError(name, "resources.ColorSpace is not a dictionary")
	}
	entry, ok := dict.Get(name)
	if !ok {
		return nil, NewFormatError(name, "name not found in resources.ColorSpace")
	}
	return p.Parse(entry)
}

func (p *Parser) parseArray(arr pdfobj.Array) (Space, error) {
	head, ok := arr.Get(0)
	if !ok {
		return nil, NewFormatError("", "color-space array is empty")
	}
	headResolved, err := p.Resolver.FetchIfRef(head)
	if err != nil {
		return nil, err
	}
	nameObj, ok := headResolved.(pdfobj.Name)
	if !ok {
		return nil, NewFormatError("", "color-space array head is not a name")
	}

	switch nameObj.Value() {
	case "G", "DeviceGray":
		return DeviceGray, nil
	case "RGB", "DeviceRGB":
		return DeviceRGB, nil
	case "CMYK", "DeviceCMYK":
		return DeviceCMYK, nil
	case "CalGray":
		return p.parseCalGray(arr)
	case "CalRGB":
		return p.parseCalRGB(arr)
	case "Lab":
		return p.parseLab(arr)
	case "ICCBased":
		return p.parseICCBased(arr)
	case "Pattern":
		return p.parsePattern(arr)
	case "I", "Indexed":
		return p.parseIndexed(arr)
	case "Separation":
		return p.parseAlternate(arr, 1)
	case "DeviceN":
		return p.parseDeviceN(arr)
	default:
		return nil, NewFormatError(nameObj.Value(), "unrecognized color-space array head")
	}
}

func (p *Parser) dictArg(arr pdfobj.Array, index int) (pdfobj.Dictionary, error) {
	obj, ok := arr.Get(index)
	if !ok {
		return nil, NewFormatError("", "color-space array missing expected dictionary argument")
	}
	resolved, err := p.Resolver.FetchIfRef(obj)
	if err != nil {
		return nil, err
	}
	dict, ok := resolved.(pdfobj.Dictionary)
	if !ok {
		return nil, NewFormatError("", "color-space array argument is not a dictionary")
	}
	return dict, nil
}

func floatArray(d pdfobj.Dictionary, key string) ([3]float64, bool) {
	arr, ok := d.GetArray(key)
	if !ok || arr.Len() < 3 {
		return [3]float64{}, false
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		item, ok := arr.Get(i)
		if !ok {
			return [3]float64{}, false
		}
		num, ok := item.(pdfobj.Number)
		if !ok {
			return [3]float64{}, false
		}
		out[i] = num.Float()
	}
	return out, true
}

func numberField(d pdfobj.Dictionary, key string, def float64) float64 {
	item, ok := d.Get(key)
	if !ok {
		return def
	}
	num, ok := item.(pdfobj.Number)
	if !ok {
		return def
	}
	return num.Float()
}

func (p *Parser) parseCalGray(arr pdfobj.Array) (Space, error) {
	d, err := p.dictArg(arr, 1)
	if err != nil {
		return nil, err
	}
	wp, ok := floatArray(d, "WhitePoint")
	if !ok {
		return nil, NewFormatError(string(FamilyCalGray), "missing whitepoint")
	}
	bp, _ := floatArray(d, "BlackPoint")
	gamma := numberField(d, "Gamma", 1)
	return NewCalGray(CalGrayParams{WhitePoint: wp, BlackPoint: bp, Gamma: gamma}, p.Log)
}

func (p *Parser) parseCalRGB(arr pdfobj.Array) (Space, error) {
	d, err := p.dictArg(arr, 1)
	if err != nil {
		return nil, err
	}
	wp, ok := floatArray(d, "WhitePoint")
	if !ok {
		return nil, NewFormatError(string(FamilyCalRGB), "missing whitepoint")
	}
	bp, _ := floatArray(d, "BlackPoint")

	gamma := [3]float64{1, 1, 1}
	if gArr, ok := d.GetArray("Gamma"); ok && gArr.Len() >= 3 {
		for i := 0; i < 3; i++ {
			if item, ok := gArr.Get(i); ok {
				if num, ok := item.(pdfobj.Number); ok {
					gamma[i] = num.Float()
				}
			}
		}
	}

	var matrix *[9]float64
	if mArr, ok := d.GetArray("Matrix"); ok && mArr.Len() >= 9 {
		var m [9]float64
		for i := 0; i < 9; i++ {
			if item, ok := mArr.Get(i); ok {
				if num, ok := item.(pdfobj.Number); ok {
					m[i] = num.Float()
				}
			}
		}
		matrix = &m
	}

	return NewCalRGB(CalRGBParams{WhitePoint: wp, BlackPoint: bp, Gamma: gamma, Matrix: matrix}, p.Log)
}

func (p *Parser) parseLab(arr pdfobj.Array) (Space, error) {
	d, err := p.dictArg(arr, 1)
	if err != nil {
		return nil, err
	}
	wp, ok := floatArray(d, "WhitePoint")
	if !ok {
		return nil, NewFormatError(string(FamilyLab), "missing whitepoint")
	}
	bp, _ := floatArray(d, "BlackPoint")

	rng := defaultLabRange
	if rArr, ok := d.GetArray("Range"); ok && rArr.Len() >= 4 {
		for i := 0; i < 4; i++ {
			if item, ok := rArr.Get(i); ok {
				if num, ok := item.(pdfobj.Number); ok {
					rng[i] = num.Float()
				}
			}
		}
	}

	return NewLab(LabParams{WhitePoint: wp, BlackPoint: bp, Range: rng}, p.Log)
}

func (p *Parser) parseICCBased(arr pdfobj.Array) (Space, error) {
	obj, ok := arr.Get(1)
	if !ok {
		return nil, NewFormatError("ICCBased", "ICCBased array missing stream argument")
	}
	resolved, err := p.Resolver.FetchIfRef(obj)
	if err != nil {
		return nil, err
	}
	stream, ok := resolved.(pdfobj.Stream)
	if !ok {
		return nil, NewFormatError("ICCBased", "ICCBased argument is not a stream")
	}
	dict := stream.Dict()
	n := int(numberField(dict, "N", 0))

	if altObj, ok := dict.Get("Alternate"); ok {
		alt, err := p.Parse(altObj)
		if err == nil {
			if alt.NumComps() == n {
				return alt, nil
			}
			p.Log.Warn("ICCBased Alternate numComps mismatch, falling back to device singleton",
				observability.Int("N", n), observability.Int("alternate numComps", alt.NumComps()))
		}
	}

	sp, ok := DeviceSingletonByNumComps(n)
	if !ok {
		return nil, NewFormatError("ICCBased", fmt.Sprintf("no device singleton for N=%d", n))
	}
	return sp, nil
}

func (p *Parser) parsePattern(arr pdfobj.Array) (Space, error) {
	if arr.Len() < 2 {
		return NewPattern(nil, p.Log), nil
	}
	baseObj, ok := arr.Get(1)
	if !ok {
		return NewPattern(nil, p.Log), nil
	}
	base, err := p.Parse(baseObj)
	if err != nil {
		return nil, err
	}
	return NewPattern(base, p.Log), nil
}

func (p *Parser) parseIndexed(arr pdfobj.Array) (Space, error) {
	baseObj, ok := arr.Get(1)
	if !ok {
		return nil, NewFormatError(string(FamilyIndexed), "missing base argument")
	}
	base, err := p.Parse(baseObj)
	if err != nil {
		return nil, err
	}

	hivalObj, ok := arr.Get(2)
	if !ok {
		return nil, NewFormatError(string(FamilyIndexed), "missing hival argument")
	}
	hivalResolved, err := p.Resolver.FetchIfRef(hivalObj)
	if err != nil {
		return nil, err
	}
	hivalNum, ok := hivalResolved.(pdfobj.Number)
	if !ok {
		return nil, NewFormatError(string(FamilyIndexed), "hival is not a number")
	}
	count := hivalNum.Int() + 1

	lutObj, ok := arr.Get(3)
	if !ok {
		return nil, NewFormatError(string(FamilyIndexed), "missing lookup table argument")
	}
	lutResolved, err := p.Resolver.FetchIfRef(lutObj)
	if err != nil {
		return nil, err
	}

	var palette []byte
	switch v := lutResolved.(type) {
	case pdfobj.Stream:
		want := base.NumComps() * count
		palette, err = v.GetBytes(want)
		if err != nil {
			return nil, err
		}
	case pdfobj.String:
		palette = IndexedLookupFromString(v.Bytes())
	default:
		return nil, NewFormatError(string(FamilyIndexed), "unrecognized lookup table type")
	}

	return NewIndexed(base, count, palette, p.Log)
}

func (p *Parser) parseAlternate(arr pdfobj.Array, numComps int) (Space, error) {
	baseObj, ok := arr.Get(2)
	if !ok {
		return nil, NewFormatError(string(FamilyAlternate), "missing alternate-space argument")
	}
	base, err := p.Parse(baseObj)
	if err != nil {
		return nil, err
	}

	fnObj, ok := arr.Get(3)
	if !ok {
		return nil, NewFormatError(string(FamilyAlternate), "missing tint transform argument")
	}
	resolvedFn, err := p.Resolver.FetchIfRef(fnObj)
	if err != nil {
		return nil, err
	}
	tint, err := p.TintFactory.Build(resolvedFn)
	if err != nil {
		return nil, err
	}

	return NewAlternate(numComps, base, tint), nil
}

func (p *Parser) parseDeviceN(arr pdfobj.Array) (Space, error) {
	namesObj, ok := arr.Get(1)
	if !ok {
		return nil, NewFormatError(string(FamilyAlternate), "missing DeviceN names argument")
	}
	resolvedNames, err := p.Resolver.FetchIfRef(namesObj)
	if err != nil {
		return nil, err
	}
	names, ok := resolvedNames.(pdfobj.Array)
	if !ok {
		return nil, NewFormatError(string(FamilyAlternate), "DeviceN names argument is not an array")
	}
	return p.parseAlternate(arr, names.Len())
}
