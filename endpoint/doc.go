// Package endpoint is the runtime shared by generated z/OSMF request
// builders.
//
// A generated builder holds a [Base], the fields of its endpoint and a
// type parameter naming the response shape it decodes into. Setters return
// modified copies. Narrowing methods return a builder with a different
// shape and consume the old one. Build assembles a [Request], attaches the
// session credential from the [TokenStore], runs the client's
// [Interceptor] chain, sends the call and decodes the response with the
// shape's [Target] implementation:
//
//	list, err := client.Datasets().List("SYS1.*").
//	    Volume("VOL001").
//	    AttributesBase().
//	    Build(ctx)
//
// Every failure is an [*Error] whose [Kind] names the failing layer.
package endpoint
