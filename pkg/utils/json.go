package utils

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJSON(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		fmt.Println(err)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	out.Write(pretty)
	return nil
}
