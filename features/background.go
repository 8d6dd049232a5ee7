package features

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/values"
)

const (
	// BackgroundOnElement puts background image on the block element itself.
	BackgroundOnElement = "element"
	// BackgroundOnPseudo puts background image on :before pseudo element.
	BackgroundOnPseudo = "pseudo-element"
)

// BackgroundURL returns URL of the image requested as block background:
// featured image when asked for and available, otherwise bgImage attachment
// at bgImageSize or its stored URL.
func BackgroundURL(a attrs.Set, env Env) string {
	if a.Bool("featuredImageBg") && env.FeaturedImage != "" {
		return env.FeaturedImage
	}
	img := a.Sub("bgImage")
	if img == nil {
		return ""
	}
	if id, ok := img.Get("id").Int(); ok && env.Media != nil {
		size := a.String("bgImageSize")
		if size == "" {
			size = "full"
		}
		if url, found := env.Media.AttachmentURL(int64(id), size); found {
			return url
		}
	}
	return img.Sub("image").String("url")
}

// BackgroundImage composes background-image value. Image placed on the
// element wins; with overlay it is combined with gradient or flat background
// color. Without image only gradient is produced. Empty result means no
// declaration.
func BackgroundImage(a attrs.Set, env Env) string {
	bgColor := values.Hex2RGBA(a.String("backgroundColor"), a.Get("backgroundColorOpacity").Raw())
	gradient := a.Bool("gradient")

	var linear string
	if gradient {
		one := values.Hex2RGBA(a.String("gradientColorOne"), a.Get("gradientColorOneOpacity").Raw())
		two := values.Hex2RGBA(a.String("gradientColorTwo"), a.Get("gradientColorTwoOpacity").Raw())
		if stop := a.Get("gradientColorStopOne"); one != "" && stop.String() != "" {
			one += " " + stop.String() + "%"
		}
		if stop := a.Get("gradientColorStopTwo"); two != "" && stop.String() != "" {
			two += " " + stop.String() + "%"
		}
		linear = "linear-gradient(" + a.String("gradientDirection") + "deg, " + one + ", " + two + ")"
	}

	options := a.Sub("bgOptions")
	hasImage := (a.Bool("featuredImageBg") && env.FeaturedImage != "") || a.Bool("bgImage")
	if hasImage && options.String("selector") == BackgroundOnElement {
		url := "url(" + BackgroundURL(a, env) + ")"
		if (bgColor != "" || gradient) && options.Bool("overlay") {
			if gradient {
				return linear + ", " + url
			}
			return "linear-gradient(0deg, " + bgColor + ", " + bgColor + "), " + url
		}
		return url
	}
	return linear
}

// Background emits background color and image settings. Image placed on the
// pseudo element gets its own absolutely positioned :before layer.
func Background(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint, env Env) {
	if bp != common.BreakpointDesktop {
		return
	}
	options := a.Sub("bgOptions")
	image := BackgroundImage(a, env)

	g := css.Decls(
		"background-color", values.Hex2RGBA(a.String("backgroundColor"), a.Get("backgroundColorOpacity").Raw()),
		"background-image", image,
	)
	hasImage := a.Bool("bgImage") || (a.Bool("featuredImageBg") && env.FeaturedImage != "")
	if hasImage && options.String("selector") == BackgroundOnElement {
		g = append(g, backgroundOptions(options)...)
	}
	rs.Add(selector, g)

	if !hasImage || options.String("selector") != BackgroundOnPseudo {
		return
	}
	rs.Add(selector, css.Decls("position", "relative", "overflow", "hidden"))

	pseudo := css.Decls(
		"content", `""`,
		"background-image", "url("+BackgroundURL(a, env)+")",
	)
	pseudo = append(pseudo, backgroundOptions(options)...)
	pseudo = append(pseudo, css.Decls(
		"z-index", "0",
		"position", "absolute",
		"top", "0",
		"right", "0",
		"bottom", "0",
		"left", "0",
		"transition", "inherit",
		"pointer-events", "none",
	)...)
	if opacity := options.Get("opacity"); opacity.HasNumber() && !opacity.Equal(attrs.V(1)) {
		pseudo = append(pseudo, css.Declaration{Property: "opacity", Value: opacity.String()})
	}
	rs.Add(selector+":before", pseudo)
}

func backgroundOptions(options attrs.Set) css.Group {
	return css.Decls(
		"background-repeat", options.String("repeat"),
		"background-position", options.String("position"),
		"background-size", options.String("size"),
		"background-attachment", options.String("attachment"),
	)
}
